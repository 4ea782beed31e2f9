package http

import (
	"gitagpt/internal/model"
	"gitagpt/internal/verse"
)

// --- Request DTOs ---

type searchReq struct {
	Query   string `json:"query"   binding:"required,min=1,max=5000"`
	Emotion string `json:"emotion" binding:"omitempty,max=50"`
	TopK    int    `json:"top_k"   binding:"omitempty,min=1,max=20"`
}

func (r searchReq) validate() error { return nil }

func (r searchReq) toInput() verse.SearchInput {
	return verse.SearchInput{
		Query:   r.Query,
		Emotion: r.Emotion,
		TopK:    r.TopK,
	}
}

// --- Response DTOs ---

type verseResp struct {
	ID              string  `json:"id"`
	Chapter         int     `json:"chapter"`
	Verse           int     `json:"verse"`
	Shloka          string  `json:"shloka"`
	Transliteration string  `json:"transliteration"`
	EngMeaning      string  `json:"eng_meaning"`
	HinMeaning      string  `json:"hin_meaning,omitempty"`
	Similarity      float64 `json:"similarity"`
}

type searchResp struct {
	Verses []verseResp `json:"verses"`
	Count  int         `json:"count"`
}

func newVerseResp(v model.Verse) verseResp {
	return verseResp{
		ID:              v.ID,
		Chapter:         v.Chapter,
		Verse:           v.Verse,
		Shloka:          v.Shloka,
		Transliteration: v.Transliteration,
		EngMeaning:      v.EngMeaning,
		HinMeaning:      v.HinMeaning,
		Similarity:      v.Similarity,
	}
}

func (h *handler) newSearchResp(output verse.SearchOutput) searchResp {
	verses := make([]verseResp, 0, len(output.Verses))
	for _, v := range output.Verses {
		verses = append(verses, newVerseResp(v))
	}
	return searchResp{
		Verses: verses,
		Count:  output.Count,
	}
}
