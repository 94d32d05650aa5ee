package selection_test

import (
	"testing"

	"github.com/Public-Shorts/curation/internal/domain/model"
	"github.com/Public-Shorts/curation/internal/domain/selection"
	. "github.com/smartystreets/goconvey/convey"
)

func candidate(id string, score float64, opts ...func(*selection.Candidate)) selection.Candidate {
	c := selection.Candidate{
		Entry: model.FilmEntry{ID: id, Title: id, Score: score},
		Score: score,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func highlighted(curators int) func(*selection.Candidate) {
	return func(c *selection.Candidate) {
		c.Highlighted = true
		c.CuratorCount = curators
		c.Entry.CuratorCount = curators
	}
}

func unanimous(reviewCount int) func(*selection.Candidate) {
	return func(c *selection.Candidate) {
		c.Unanimous = true
		c.ReviewCount = reviewCount
		c.Entry.ReviewCount = reviewCount
	}
}

func tierIDs(tier []selection.Candidate) []string {
	ids := make([]string, len(tier))
	for i, c := range tier {
		ids[i] = c.Entry.ID
	}
	return ids
}

func TestCategorize(t *testing.T) {
	cat := selection.NewCategorizer(60, 35)

	Convey("Given candidates around the thresholds", t, func() {
		tiers := cat.Categorize([]selection.Candidate{
			candidate("at-selected", 60),
			candidate("above-selected", 72.5),
			candidate("at-maybe", 35),
			candidate("below-maybe", 34.9),
			candidate("zero", 0),
		})

		Convey("Then a score exactly at selectedThreshold is Selected, never Maybe", func() {
			So(tierIDs(tiers.Selected), ShouldContain, "at-selected")
			So(tierIDs(tiers.Maybe), ShouldNotContain, "at-selected")
		})

		Convey("Then a score exactly at maybeThreshold is Maybe, not excluded", func() {
			So(tierIDs(tiers.Maybe), ShouldContain, "at-maybe")
		})

		Convey("Then scores below maybeThreshold land nowhere", func() {
			So(tierIDs(tiers.Selected), ShouldNotContain, "below-maybe")
			So(tierIDs(tiers.Maybe), ShouldNotContain, "below-maybe")
			So(tiers.Highlights, ShouldBeEmpty)
			So(tiers.Unanimous, ShouldBeEmpty)
		})

		Convey("Then selected is sorted by score descending", func() {
			So(tierIDs(tiers.Selected), ShouldResemble, []string{"above-selected", "at-selected"})
		})
	})

	Convey("Given a highlighted candidate below every threshold", t, func() {
		tiers := cat.Categorize([]selection.Candidate{
			candidate("low-highlight", 10, highlighted(1)),
		})

		Convey("Then it appears in Highlights and only there", func() {
			So(tierIDs(tiers.Highlights), ShouldResemble, []string{"low-highlight"})
			So(tiers.Selected, ShouldBeEmpty)
			So(tiers.Maybe, ShouldBeEmpty)
		})
	})

	Convey("Given candidates in multiple tiers at once", t, func() {
		tiers := cat.Categorize([]selection.Candidate{
			candidate("everything", 90, highlighted(2), unanimous(3)),
		})

		Convey("Then tiers are not mutually exclusive", func() {
			So(tierIDs(tiers.Highlights), ShouldContain, "everything")
			So(tierIDs(tiers.Unanimous), ShouldContain, "everything")
			So(tierIDs(tiers.Selected), ShouldContain, "everything")
		})
	})

	Convey("Given the documented sort keys", t, func() {
		tiers := cat.Categorize([]selection.Candidate{
			candidate("h-few-high", 95, highlighted(1)),
			candidate("h-many-low", 40, highlighted(3)),
			candidate("h-many-high", 80, highlighted(3)),
			candidate("u-few", 90, unanimous(1)),
			candidate("u-many", 70, unanimous(4)),
		})

		Convey("Then highlights sort by curatorCount then score", func() {
			So(tierIDs(tiers.Highlights), ShouldResemble, []string{"h-many-high", "h-many-low", "h-few-high"})
		})

		Convey("Then unanimous sorts by reviewCount then score", func() {
			So(tierIDs(tiers.Unanimous), ShouldResemble, []string{"u-many", "u-few"})
		})
	})

	Convey("Given tied scores", t, func() {
		tiers := cat.Categorize([]selection.Candidate{
			candidate("alpha", 70),
			candidate("beta", 70),
			candidate("gamma", 70),
		})

		Convey("Then ties keep title-ascending input order", func() {
			So(tierIDs(tiers.Selected), ShouldResemble, []string{"alpha", "beta", "gamma"})
		})
	})
}

func TestBuildVetoSet(t *testing.T) {
	Convey("Given veto entries", t, func() {
		entries := []model.VetoEntry{
			{SubmissionID: "cinema-only", VetoedFromCinema: true},
			{SubmissionID: "tv-only", VetoedFromTV: true},
			{SubmissionID: "neither"},
			{VetoedFromCinema: true}, // missing id
		}

		Convey("Then cinema OR TV vetoes count, the rest do not", func() {
			vetoed := selection.BuildVetoSet(entries)
			So(vetoed, ShouldHaveLength, 2)
			So(vetoed, ShouldContainKey, "cinema-only")
			So(vetoed, ShouldContainKey, "tv-only")
		})
	})
}

func TestFilterVetoed(t *testing.T) {
	Convey("Given submissions and a veto set", t, func() {
		subs := []model.Submission{{ID: "keep"}, {ID: "drop"}}
		vetoed := map[string]struct{}{"drop": {}}

		Convey("Then vetoed submissions are removed entirely", func() {
			out := selection.FilterVetoed(subs, vetoed)
			So(out, ShouldHaveLength, 1)
			So(out[0].ID, ShouldEqual, "keep")
		})

		Convey("Then an empty veto set passes everything through", func() {
			So(selection.FilterVetoed(subs, nil), ShouldHaveLength, 2)
		})
	})
}
