package ranking

import (
	"context"
	"testing"

	"github.com/hyperjump/mitsumori/models"
)

func TestKeywordScorerFullOverlap(t *testing.T) {
	snap := newTestSnapshot(t, testRaws(), nil)
	scorer := NewKeywordScorer(nil)

	got := scorer.Score(context.Background(), NewQuery("acetylene"), snap)
	if len(got) != 1 {
		t.Fatalf("expected 1 suggestion, got %d", len(got))
	}
	if got[0].Item.Description != "Acetylene Gas" {
		t.Errorf("matched %q, want Acetylene Gas", got[0].Item.Description)
	}
	if got[0].RelevanceScore != 1.0 {
		t.Errorf("score = %v, want 1.0", got[0].RelevanceScore)
	}
	if got[0].MatchKind != models.MatchKeyword {
		t.Errorf("kind = %v, want keyword", got[0].MatchKind)
	}
}

func TestKeywordScorerSynonymMatch(t *testing.T) {
	snap := newTestSnapshot(t, testRaws(), nil)
	scorer := NewKeywordScorer(nil)

	// "portland" never appears in the cement description; it comes from
	// the material synonym expansion.
	got := scorer.Score(context.Background(), NewQuery("portland"), snap)
	if len(got) != 1 {
		t.Fatalf("expected 1 suggestion, got %d", len(got))
	}
	if got[0].Item.Description != "Cement OPC 43 grade" {
		t.Errorf("matched %q, want cement item", got[0].Item.Description)
	}
}

func TestKeywordScorerPartialOverlap(t *testing.T) {
	snap := newTestSnapshot(t, testRaws(), nil)
	scorer := NewKeywordScorer(nil)

	got := scorer.Score(context.Background(), NewQuery("acetylene refill"), snap)
	if len(got) != 1 {
		t.Fatalf("expected 1 suggestion, got %d", len(got))
	}
	if got[0].RelevanceScore != 0.5 {
		t.Errorf("score = %v, want 0.5", got[0].RelevanceScore)
	}
	if len(got[0].MatchedTerms) != 1 || got[0].MatchedTerms[0] != "acetylene" {
		t.Errorf("matched terms = %v, want [acetylene]", got[0].MatchedTerms)
	}
}

func TestKeywordScorerThreshold(t *testing.T) {
	snap := newTestSnapshot(t, testRaws(), nil)
	scorer := NewKeywordScorer(nil)

	// One hit out of four query words is 0.25, at or below the 0.3 floor.
	got := scorer.Score(context.Background(), NewQuery("acetylene qqq www eee"), snap)
	if len(got) != 0 {
		t.Errorf("expected overlap below threshold to be dropped, got %d suggestions", len(got))
	}
}

func TestKeywordScorerNoHits(t *testing.T) {
	snap := newTestSnapshot(t, testRaws(), nil)
	scorer := NewKeywordScorer(nil)

	if got := scorer.Score(context.Background(), NewQuery("zirconium"), snap); len(got) != 0 {
		t.Errorf("expected no suggestions, got %d", len(got))
	}
}

func TestKeywordScorerCatalogOrder(t *testing.T) {
	snap := newTestSnapshot(t, testRaws(), nil)
	scorer := NewKeywordScorer(nil)

	// "materials" is a keyword on both MATERIALS items via the category.
	got := scorer.Score(context.Background(), NewQuery("materials"), snap)
	if len(got) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(got))
	}
	if got[0].Item.Description != "Acetylene Gas" || got[1].Item.Description != "Cement OPC 43 grade" {
		t.Errorf("suggestions out of catalog order: %q, %q",
			got[0].Item.Description, got[1].Item.Description)
	}
}
