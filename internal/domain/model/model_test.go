package model_test

import (
	"testing"

	"github.com/Public-Shorts/curation/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParseSelection(t *testing.T) {
	Convey("Given raw selection values from the store", t, func() {
		Convey("Then the closed set parses", func() {
			for raw, want := range map[string]model.Selection{
				"selected": model.SelectionSelected,
				"maybe":    model.SelectionMaybe,
				"rejected": model.SelectionRejected,
			} {
				sel, err := model.ParseSelection(raw)
				So(err, ShouldBeNil)
				So(sel, ShouldEqual, want)
			}
		})

		Convey("Then the legacy notSelected spelling maps to rejected", func() {
			sel, err := model.ParseSelection("notSelected")
			So(err, ShouldBeNil)
			So(sel, ShouldEqual, model.SelectionRejected)
		})

		Convey("Then unknown shapes are rejected", func() {
			_, err := model.ParseSelection("shortlisted")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "unknown selection")
		})
	})
}

func TestSelectionValue(t *testing.T) {
	Convey("Given the selection value mapping", t, func() {
		So(model.SelectionSelected.Value(), ShouldEqual, 1)
		So(model.SelectionMaybe.Value(), ShouldEqual, 0.5)
		So(model.SelectionRejected.Value(), ShouldEqual, 0)
	})
}

func TestGenerateFlags(t *testing.T) {
	Convey("Given a submission and its reviews", t, func() {
		sub := model.Submission{
			ID:       "sub-1",
			Explicit: true,
			AIUsed:   true,
		}
		reviews := []model.Review{
			{CuratorID: "c1", ContentNotes: []string{"violence", "none"}},
			{CuratorID: "c2", ContentNotes: []string{"violence", "strongLanguage"}},
		}

		Convey("When generating flags", func() {
			flags := model.GenerateFlags(sub, reviews)

			Convey("Then submitter declarations and notes each raise a flag", func() {
				So(flags, ShouldHaveLength, 3)
				So(flags[0].Label, ShouldEqual, model.FlagExplicit)
				So(flags[1].Label, ShouldEqual, model.FlagAI)
				So(flags[2].Label, ShouldEqual, model.FlagWarnings)
			})

			Convey("Then content notes are de-duplicated and 'none' is dropped", func() {
				So(flags[2].Details, ShouldEqual, "violence, strongLanguage")
			})
		})

		Convey("When nothing is declared and notes are only 'none'", func() {
			flags := model.GenerateFlags(model.Submission{ID: "sub-2"}, []model.Review{
				{CuratorID: "c1", ContentNotes: []string{"none"}},
			})

			Convey("Then no flags are raised", func() {
				So(flags, ShouldBeEmpty)
			})
		})
	})
}

func TestUniqueTagLabels(t *testing.T) {
	Convey("Given reviews with overlapping tags", t, func() {
		reviews := []model.Review{
			{Tags: []model.Tag{{Label: "Drama"}, {Label: "urban"}}},
			{Tags: []model.Tag{{Label: "drama"}, {Label: ""}}},
		}

		Convey("Then labels are lower-cased, unique and sorted", func() {
			So(model.UniqueTagLabels(reviews), ShouldResemble, []string{"drama", "urban"})
		})
	})
}

func TestAverageRating(t *testing.T) {
	Convey("Given reviews with partial ratings", t, func() {
		r1, r2 := 4.0, 5.0
		reviews := []model.Review{{Rating: &r1}, {Rating: &r2}, {}}

		Convey("Then only present ratings are averaged", func() {
			avg := model.AverageRating(reviews)
			So(avg, ShouldNotBeNil)
			So(*avg, ShouldEqual, 4.5)
		})

		Convey("Then no ratings yields nil", func() {
			So(model.AverageRating([]model.Review{{}}), ShouldBeNil)
		})
	})
}

func TestSettingsValidate(t *testing.T) {
	Convey("Given selection settings", t, func() {
		Convey("Then the documented defaults validate", func() {
			So(model.DefaultSettings().Validate(), ShouldBeNil)
		})

		Convey("Then thresholds outside bounds are rejected", func() {
			s := model.DefaultSettings()
			s.SelectedThreshold = 96
			So(s.Validate(), ShouldNotBeNil)

			s = model.DefaultSettings()
			s.MaybeThreshold = 14
			So(s.Validate(), ShouldNotBeNil)
		})

		Convey("Then selected must exceed maybe", func() {
			s := model.DefaultSettings()
			s.SelectedThreshold = 50
			s.MaybeThreshold = 50
			So(s.Validate(), ShouldNotBeNil)
		})
	})
}
