package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"coursecatalog/internal/model"
	"coursecatalog/internal/requirement"

	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

type categoryView struct {
	Key     string `json:"key" yaml:"key"`
	Courses int    `json:"courses" yaml:"courses"`
}

type courseView struct {
	Code         string   `json:"code" yaml:"code"`
	Name         string   `json:"name,omitempty" yaml:"name,omitempty"`
	Breadth      []string `json:"breadth,omitempty" yaml:"breadth,omitempty"`
	Distribution []string `json:"distribution,omitempty" yaml:"distribution,omitempty"`
}

type offeringView struct {
	Code       string `json:"code" yaml:"code"`
	Term       string `json:"term,omitempty" yaml:"term,omitempty"`
	Section    string `json:"section,omitempty" yaml:"section,omitempty"`
	Time       string `json:"time,omitempty" yaml:"time,omitempty"`
	Location   string `json:"location,omitempty" yaml:"location,omitempty"`
	Instructor string `json:"instructor,omitempty" yaml:"instructor,omitempty"`
}

func renderCategories(w io.Writer, format string, keys []string, idx requirement.Index) error {
	views := make([]categoryView, 0, len(keys))
	for _, k := range keys {
		views = append(views, categoryView{Key: k, Courses: len(idx[k])})
	}
	if format != formatText {
		return encode(w, format, views)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, v := range views {
		fmt.Fprintf(tw, "%s\t%d courses\n", v.Key, v.Courses)
	}
	return tw.Flush()
}

func renderCourses(w io.Writer, format string, courses []model.Course) error {
	views := make([]courseView, 0, len(courses))
	for _, c := range courses {
		views = append(views, courseView{
			Code:         c.Code,
			Name:         str(c.Name),
			Breadth:      requirement.BreadthCategories(c),
			Distribution: requirement.DistributionCategories(c),
		})
	}
	if format != formatText {
		return encode(w, format, views)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, v := range views {
		fmt.Fprintf(tw, "%s\t%s\n", v.Code, v.Name)
	}
	return tw.Flush()
}

func renderOfferings(w io.Writer, format string, offerings []model.Offering) error {
	views := make([]offeringView, 0, len(offerings))
	for _, o := range offerings {
		views = append(views, offeringView{
			Code:       o.Code,
			Term:       str(o.Term),
			Section:    str(o.Section),
			Time:       str(o.Time),
			Location:   str(o.Location),
			Instructor: str(o.Instructor),
		})
	}
	if format != formatText {
		return encode(w, format, views)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, v := range views {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", v.Code, v.Term, v.Section, v.Time, v.Location, v.Instructor)
	}
	return tw.Flush()
}

func encode(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(v)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
