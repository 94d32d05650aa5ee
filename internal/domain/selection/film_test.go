package selection_test

import (
	"testing"

	"github.com/Public-Shorts/curation/internal/domain/model"
	"github.com/Public-Shorts/curation/internal/domain/scoring"
	"github.com/Public-Shorts/curation/internal/domain/selection"
	. "github.com/smartystreets/goconvey/convey"
)

func TestHighlightIndex(t *testing.T) {
	Convey("Given curators with highlight lists", t, func() {
		curators := []model.Curator{
			{ID: "c1", Name: "Ana", Highlights: []string{"sub-1", "sub-2"}},
			{ID: "c2", Name: "Ben", Highlights: []string{"sub-2", ""}},
			{ID: "c3", Name: "Cleo"},
		}

		Convey("Then ids map to curator names in input order", func() {
			idx := selection.HighlightIndex(curators)
			So(idx, ShouldHaveLength, 2)
			So(idx["sub-1"], ShouldResemble, []string{"Ana"})
			So(idx["sub-2"], ShouldResemble, []string{"Ana", "Ben"})
		})
	})
}

func TestBuildCandidate(t *testing.T) {
	rating := 4.0
	sub := model.Submission{
		ID:       "sub-1",
		Title:    "Night Shift",
		Director: "R. Okafor",
		Length:   12,
		Reviews: []model.Review{
			{CuratorID: "c1", SubmissionID: "sub-1", Selection: model.SelectionSelected, Rating: &rating,
				Tags: []model.Tag{{Label: "Drama"}}},
			{CuratorID: "jury-1", SubmissionID: "sub-1", Selection: model.SelectionRejected},
		},
	}

	Convey("Given a scored submission", t, func() {
		res := scoring.Result{SubmissionID: "sub-1", Score: 66.666, ReviewCount: 2}

		Convey("When the jury review is excluded from unanimity", func() {
			applicable := sub.Reviews[:1]
			cand := selection.BuildCandidate(sub, res, []string{"Ana"}, applicable)

			Convey("Then the entry carries rounded score and aggregates", func() {
				So(cand.Entry.Score, ShouldEqual, 66.7)
				So(cand.Score, ShouldEqual, 66.666)
				So(cand.Entry.Tags, ShouldResemble, []string{"drama"})
				So(*cand.Entry.AvgRating, ShouldEqual, 4.0)
				So(cand.Entry.ReviewCount, ShouldEqual, 2)
				So(cand.Entry.CuratorCount, ShouldEqual, 1)
			})

			Convey("Then unanimity is judged on applicable reviews only", func() {
				So(cand.Unanimous, ShouldBeTrue)
				So(cand.Highlighted, ShouldBeTrue)
			})
		})

		Convey("When the rejecting review counts", func() {
			cand := selection.BuildCandidate(sub, res, nil, sub.Reviews)

			Convey("Then the submission is not unanimous", func() {
				So(cand.Unanimous, ShouldBeFalse)
				So(cand.Highlighted, ShouldBeFalse)
			})
		})

		Convey("When there are no applicable reviews", func() {
			cand := selection.BuildCandidate(sub, scoring.Result{SubmissionID: "sub-1"}, nil, nil)

			Convey("Then a zero-review submission can never be unanimous", func() {
				So(cand.Unanimous, ShouldBeFalse)
			})
		})
	})
}
