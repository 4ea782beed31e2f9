package usecase

import "gitagpt/internal/model"

const (
	LogPrefixHandle = "internal.chat.Handle"

	// MaxInputLength bounds user input, measured in runes.
	MaxInputLength = 5000
)

// defaultVerse is the safe fallback passage substituted when verse
// retrieval fails or returns nothing. BG 2.47 is the Gita's most
// broadly applicable teaching.
var defaultVerse = model.Verse{
	ID:              "BG2.47",
	Chapter:         2,
	Verse:           47,
	Shloka:          "कर्मण्येवाधिकारस्ते मा फलेषु कदाचन। मा कर्मफलहेतुर्भूर्मा ते सङ्गोऽस्त्वकर्मणि॥",
	Transliteration: "karmaṇy-evādhikāras te mā phaleṣhu kadāchana mā karma-phala-hetur bhūr mā te saṅgo 'stv akarmaṇi",
	EngMeaning:      "You have a right to perform your prescribed duty, but you are not entitled to the fruits of action. Never consider yourself the cause of the results of your activities, and never be attached to not doing your duty.",
	Similarity:      0.5,
}
