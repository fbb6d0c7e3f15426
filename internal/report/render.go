package report

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/go-pdf/fpdf"

	"github.com/soulful-academy/chakra-report/internal/questionnaire"
)

// PlanVariant selects which reset plan the report carries.
type PlanVariant string

// Supported plan variants.
const (
	PlanSevenDay PlanVariant = "7day"
	PlanThreeDay PlanVariant = "3day"
)

// LogoProvider supplies the header logo bytes. Implementations report cache
// misses and network failures as errors; the renderer treats every error as
// "render without the logo".
type LogoProvider interface {
	Get(ctx context.Context) ([]byte, error)
}

// Renderer lays out a profile as a fixed-position PDF document.
type Renderer struct {
	logo LogoProvider // nil means no logo is ever drawn
	plan PlanVariant
}

// NewRenderer creates a renderer. An unrecognized plan variant falls back to
// the seven-day plan.
func NewRenderer(logo LogoProvider, plan PlanVariant) *Renderer {
	if plan != PlanThreeDay {
		plan = PlanSevenDay
	}
	return &Renderer{logo: logo, plan: plan}
}

const reportTitle = "Soulful Chakra & Behaviour Report"

const coachingParagraph = "This means you respond better to compassionate coaching, step-by-step actions, and spiritual logic. " +
	"You do not need more information. You need a container that reminds you of your worth and keeps you consistent."

const nextStepParagraph = "Start with a 21-day guided container (Moonathon / Heal Mind & Soul) so that this pattern does not come back. " +
	"One report can give awareness, but community gives momentum. If this report was done for a client, share this with them " +
	"and ask them which day they want to start with."

const footerLine = "Soulful Academy · What You Seek Is Seeking You · Auto-generated report from your answers."

const sevenDayPlan = "7-Day Soulful Reset Plan:\n" +
	"Day 1 – Awareness: Write the earliest memory connected to this chakra.\n" +
	"Day 2 – Energy Cleanse: 108x Ho'oponopono on the main person/situation.\n" +
	"Day 3 – Body Anchor: 15 minutes of breath + name the emotion aloud.\n" +
	"Day 4 – Expression: Write or record what you never said about this.\n" +
	"Day 5 – Money/Value Action: One tangible action (offer, price, ask, boundary).\n" +
	"Day 6 – Receive Mode: 30 minutes receiving only (music, nature, self-care).\n" +
	"Day 7 – Integration: Journal 'What did I learn about my soul pattern?'."

const threeDayPlan = "3-Day Soulful Reset Plan:\n" +
	"Day 1 – Awareness: Write the earliest memory connected to this chakra.\n" +
	"Day 2 – Expression: Write or record what you never said about this.\n" +
	"Day 3 – Integration: Journal 'What did I learn about my soul pattern?'."

// dailyLife returns the fixed "how this shows up daily" paragraph. The pacing
// line follows the respondent's gender.
func dailyLife(gender Gender) string {
	pace := "natural"
	if gender == GenderFemale {
		pace = "feminine"
	}
	return "How this shows up daily:\n" +
		"- You take more emotional responsibility than others.\n" +
		"- You know what to do but you do it in bursts, not consistently.\n" +
		"- You attract people who love your energy but do not always pour back.\n" +
		"- You want a system that understands your " + pace + " pace."
}

// Render produces the finished document bytes, or a recoverable rendering
// error. Logo failures are cosmetic and never fail the report.
func (r *Renderer) Render(ctx context.Context, p *Profile) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	// Every string placed on a page goes through this, user-supplied and
	// template text alike.
	put := func(s string) string { return tr(Sanitize(s)) }

	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Header band and spine.
	pdf.SetFillColor(139, 92, 246)
	pdf.Rect(0, 0, 210, 18, "F")
	pdf.SetFillColor(236, 72, 153)
	pdf.Rect(0, 18, 6, 279, "F")

	r.drawLogo(ctx, pdf)

	pdf.SetTextColor(255, 255, 255)
	pdf.SetXY(32, 4)
	pdf.SetFont("Arial", "B", 15)
	pdf.CellFormat(0, 8, put(reportTitle), "", 1, "L", false, 0, "")

	line := func(h float64, s string) {
		pdf.CellFormat(0, h, put(s), "", 1, "L", false, 0, "")
	}
	heading := func(s string) {
		pdf.Ln(3)
		pdf.SetFont("Arial", "B", 13)
		line(7, s)
		pdf.SetFont("Arial", "", 11)
	}
	block := func(s string) {
		pdf.MultiCell(0, 6, put(s), "", "L", false)
	}

	// Identity block.
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(15)
	pdf.SetFont("Arial", "", 11)
	line(7, fmt.Sprintf("Name: %s", p.DisplayName()))
	line(7, fmt.Sprintf("Gender: %s", p.Gender))
	if p.Email != "" {
		line(7, fmt.Sprintf("Email: %s", p.Email))
	}
	line(7, fmt.Sprintf("Generated at: %s", p.GeneratedAt.Format("2006-01-02 15:04")))

	// Section 1: scores.
	heading("1. Chakra Snapshot")
	line(6, fmt.Sprintf("Average Chakra Balance: %.1f / 10", p.Classification.Average))
	pdf.Ln(1)
	for _, cat := range questionnaire.Categories() {
		line(6, fmt.Sprintf("- %s: %.1f/10", cat, p.Scores.Get(cat)))
	}

	// Section 2: core story.
	heading("2. Your Core Story")
	block(p.Classification.Narrative)
	pdf.Ln(1)
	block(dailyLife(p.Gender))

	// Section 3: personality.
	heading("3. Personality Lens")
	block(fmt.Sprintf("You are showing signs of: %s", p.Classification.PersonalityLabel))
	block(p.Classification.NeedsStatement)
	block(coachingParagraph)

	// Section 4: reset plan.
	if r.plan == PlanThreeDay {
		heading("4. 3-Day Soulful Reset Plan")
		block(threeDayPlan)
	} else {
		heading("4. 7-Day Soulful Reset Plan")
		block(sevenDayPlan)
	}

	// Section 5: affirmations.
	heading("5. Affirmations to Repeat 21 Times")
	for _, a := range p.Classification.Affirmations {
		line(6, fmt.Sprintf("- %s", a))
	}

	// Section 6: next step.
	heading("6. Recommended Next Step with Soulful Academy")
	block(nextStepParagraph)

	// Footer.
	pdf.Ln(4)
	pdf.SetFont("Arial", "I", 9)
	pdf.MultiCell(0, 5, put(footerLine), "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &RenderError{Message: "failed to serialize document", Cause: err}
	}
	return buf.Bytes(), nil
}

// drawLogo places the logo in the header band. Any failure along the way
// (provider error, unsupported image format) logs and leaves the band empty.
func (r *Renderer) drawLogo(ctx context.Context, pdf *fpdf.Fpdf) {
	if r.logo == nil {
		return
	}
	data, err := r.logo.Get(ctx)
	if err != nil {
		log.Printf("[render] proceeding without logo: %v", err)
		return
	}

	var imageType string
	switch http.DetectContentType(data) {
	case "image/jpeg":
		imageType = "JPG"
	case "image/png":
		imageType = "PNG"
	default:
		log.Printf("[render] proceeding without logo: unsupported image format")
		return
	}

	opts := fpdf.ImageOptions{ImageType: imageType}
	pdf.RegisterImageOptionsReader("logo", opts, bytes.NewReader(data))
	if pdf.Err() {
		// A corrupt image must not poison the rest of the document.
		log.Printf("[render] proceeding without logo: %v", pdf.Error())
		pdf.ClearError()
		return
	}
	pdf.ImageOptions("logo", 10, 2, 18, 0, false, opts, 0, "")
}
