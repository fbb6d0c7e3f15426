package classify

import "github.com/soulful-academy/chakra-report/internal/questionnaire"

// Archetype is the closed personality archetype set, one per category plus a
// generic fallback used when classification receives input it cannot place.
type Archetype int

const (
	ArchetypeUnknown Archetype = iota
	GuardianBuilder
	EmpathicCreator
	QuietPowerhouse
	DevotedNurturer
	EditedTruthTeller
	OverthinkingVisionary
	UngroundedMystic
)

var archetypeLabels = map[Archetype]string{
	ArchetypeUnknown:      "Soulful Being",
	GuardianBuilder:       "The Guardian Builder",
	EmpathicCreator:       "The Empathic Creator",
	QuietPowerhouse:       "The Quiet Powerhouse",
	DevotedNurturer:       "The Devoted Nurturer",
	EditedTruthTeller:     "The Edited Truth-Teller",
	OverthinkingVisionary: "The Overthinking Visionary",
	UngroundedMystic:      "The Ungrounded Mystic",
}

// String returns the display label shown in the Personality Lens section.
func (a Archetype) String() string {
	if label, ok := archetypeLabels[a]; ok {
		return label
	}
	return archetypeLabels[ArchetypeUnknown]
}

var categoryArchetypes = map[questionnaire.Category]Archetype{
	questionnaire.Root:     GuardianBuilder,
	questionnaire.Sacral:   EmpathicCreator,
	questionnaire.Solar:    QuietPowerhouse,
	questionnaire.Heart:    DevotedNurturer,
	questionnaire.Throat:   EditedTruthTeller,
	questionnaire.ThirdEye: OverthinkingVisionary,
	questionnaire.Crown:    UngroundedMystic,
}

// genericNeeds is the fallback needs statement used when the lowest category
// is somehow outside the closed set. Classification never fails.
const genericNeeds = "You need a container that honours both your sensitivity and your ambition, with small consistent steps."

var narratives = map[questionnaire.Category]string{
	questionnaire.Root: "You have a Root Chakra pattern. This usually forms in childhood when there is too much change, " +
		"too much responsibility too early, or when money and safety were not consistent. Because of this, " +
		"the nervous system learns to stay alert. You may overmanage, overgive, or hold on to control to feel safe. " +
		"Nothing is 'wrong' with you — your body simply chose survival first. Now we can teach it prosperity.",
	questionnaire.Sacral: "You have a Sacral Chakra pattern. This is the emotional and relationship centre. When this centre is tired, " +
		"the person becomes emotional but guarded — you feel a lot, but you do not always feel received. " +
		"Very often this is the 'I love everyone but who really sees me?' pattern. That creates attraction to emotionally " +
		"unavailable people or relationships with unequal emotional labour. Healing here brings back creativity, sensuality, and joy.",
	questionnaire.Solar: "You have a Solar Plexus pattern. This is the power, visibility, and pricing centre. Many healers and coaches have this. " +
		"You do a lot for others but hesitate to claim your place, raise your price, or be visible because somewhere in the past " +
		"visibility was linked with judgment. So the mind says 'I know' but the body says 'not safe.' " +
		"We heal this by combining structure with worthiness.",
	questionnaire.Heart: "You have a Heart Chakra pattern. You are naturally a nurturer. You notice people's pain, you remember details, " +
		"and you want everyone to feel included. That is beautiful, but it also made you accept less than you deserved. " +
		"Heart patterns are not about romance only — they are about receiving, forgiving, and allowing yourself to be seen " +
		"without performing. You do not have to earn love every day.",
	questionnaire.Throat: "You have a Throat Chakra pattern. You have wisdom, but you have learned to edit yourself. Maybe in childhood you were told " +
		"'not now', 'do not say this', or you had to keep family matters private. So the body linked 'expression' with 'rejection'. " +
		"Now as a healer/leader, you want to speak but the voice comes late. Healing the throat brings boundaries, bold content, and calm speech.",
	questionnaire.ThirdEye: "You have a Third Eye pattern. This is the overthinking, replaying, mental load pattern. You sense energy fast, you can read people, " +
		"but you can also doubt yourself and stay in planning. It happens when the mind was used to stay safe in childhood — scanning, predicting, " +
		"pleasing. Now we gently shift from 'thinking for safety' to 'seeing for guidance.'",
	questionnaire.Crown: "You have a Crown Chakra pattern. You are spiritually open, but not always grounded. You receive a lot of guidance, dreams, pulls, " +
		"but daily routines and money actions do not always match that guidance. This happens when a person is called to be a channel, " +
		"but the lower chakras still want safety. We will anchor your spiritual gifts in the body.",
}

var needsStatements = map[questionnaire.Category]string{
	questionnaire.Root:     "You need safety before strategy: regulated money habits, steady routines, and permission to rest.",
	questionnaire.Sacral:   "You need to be received, not just needed: reciprocal relationships and guilt-free pleasure and play.",
	questionnaire.Solar:    "You need safe visibility: structure, fair pricing, and a place to claim without apology.",
	questionnaire.Heart:    "You need to receive as freely as you give: care without performing and love you do not have to earn.",
	questionnaire.Throat:   "You need your voice back: boundaries said once, truths said early, and rooms that can hear your no.",
	questionnaire.ThirdEye: "You need to act before certainty: less replaying, more trusting the first clear instinct.",
	questionnaire.Crown:    "You need grounded spirit: daily habits and money actions that match the guidance you already receive.",
}

var affirmations = map[questionnaire.Category][3]string{
	questionnaire.Root: {
		"I am fully supported by life.",
		"Money flows to me when I am regulated.",
		"I belong in every room I enter.",
	},
	questionnaire.Sacral: {
		"My emotions are allowed.",
		"I can receive love without overgiving.",
		"I attract relationships that honour me.",
	},
	questionnaire.Solar: {
		"My power is safe.",
		"Visibility increases my impact.",
		"I deserve to be well paid for my healing.",
	},
	questionnaire.Heart: {
		"I deserve gentle love.",
		"I can give without abandoning myself.",
		"It is safe for me to be seen.",
	},
	questionnaire.Throat: {
		"My voice is valuable.",
		"I can say no with love.",
		"My truth creates my tribe.",
	},
	questionnaire.ThirdEye: {
		"I trust my inner guidance.",
		"I do not need to overthink to stay safe.",
		"Clarity comes when I act.",
	},
	questionnaire.Crown: {
		"I am guided and protected.",
		"I can be spiritual and prosperous.",
		"Divine ideas flow through me.",
	},
}
