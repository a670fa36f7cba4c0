package rollout

import (
	"fmt"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// ParsePlan decodes a rollout plan (spec.md §6.1) from YAML bytes into
// an Index, validating the structural invariants that do not depend on
// a live fleet (stage shape, prefix length, date/duration syntax).
// Ambiguous-prefix detection against the fleet happens later, inside
// Evaluate, since the plan alone cannot know the fleet's membership.
func ParsePlan(data []byte) (Index, error) {
	var doc planDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Index{}, newError(ErrorKindInvalidPlan, "ParsePlan", "malformed YAML", err)
	}
	return doc.toIndex()
}

// planDocument mirrors the on-disk YAML schema from spec.md §6.1.
type planDocument struct {
	Rollout  planRollout   `yaml:"rollout"`
	Releases []planRelease `yaml:"releases"`
}

type planRollout struct {
	Pause    bool        `yaml:"pause"`
	SkipDays []string    `yaml:"skip_days"`
	Stages   []planStage `yaml:"stages"`
}

type planStage struct {
	Subnets               []string `yaml:"subnets"`
	UpdateUnassignedNodes bool     `yaml:"update_unassigned_nodes"`
	BakeTime              string   `yaml:"bake_time"`
	WaitForNextWeek       bool     `yaml:"wait_for_next_week"`
}

type planRelease struct {
	RCName    string        `yaml:"rc_name"`
	StartDate string        `yaml:"start_date"`
	Versions  []planVersion `yaml:"versions"`
}

type planVersion struct {
	Name    string   `yaml:"name"`
	Version string   `yaml:"version"`
	Subnets []string `yaml:"subnets"`
}

func (doc planDocument) toIndex() (Index, error) {
	skipDays, err := parseWeekdays(doc.Rollout.SkipDays)
	if err != nil {
		return Index{}, err
	}

	stages := make([]Stage, 0, len(doc.Rollout.Stages))
	for i, ps := range doc.Rollout.Stages {
		stage, err := ps.toStage()
		if err != nil {
			return Index{}, newError(ErrorKindInvalidPlan, "ParsePlan",
				fmt.Sprintf("stage %d: %s", i, err.Error()), err)
		}
		stages = append(stages, stage)
	}

	if len(doc.Releases) == 0 {
		return Index{}, newError(ErrorKindEmptyReleaseCatalog, "ParsePlan", "no releases in catalog", nil)
	}

	releases := make([]Release, 0, len(doc.Releases))
	for i, pr := range doc.Releases {
		release, err := pr.toRelease()
		if err != nil {
			return Index{}, newError(ErrorKindInvalidPlan, "ParsePlan",
				fmt.Sprintf("release %d (%s): %s", i, pr.RCName, err.Error()), err)
		}
		releases = append(releases, release)
	}

	return Index{
		Rollout: Rollout{
			Pause:    doc.Rollout.Pause,
			SkipDays: skipDays,
			Stages:   stages,
		},
		Releases: releases,
	}, nil
}

func (ps planStage) toStage() (Stage, error) {
	if ps.UpdateUnassignedNodes {
		if len(ps.Subnets) > 0 {
			return Stage{}, fmt.Errorf("update_unassigned_nodes stage must not list subnets")
		}
		if ps.WaitForNextWeek {
			return Stage{}, fmt.Errorf("wait_for_next_week is only meaningful on subnet stages")
		}
		return Stage{UpdateUnassignedNodes: true}, nil
	}

	if len(ps.Subnets) == 0 {
		return Stage{}, fmt.Errorf("subnet stage must list at least one subnet")
	}
	for _, prefix := range ps.Subnets {
		p := normalizePrefix(prefix)
		if len(p) < MinPrefixLen {
			return Stage{}, fmt.Errorf("subnet prefix %q is shorter than %d characters", prefix, MinPrefixLen)
		}
	}

	bakeTime, err := parseDuration(ps.BakeTime)
	if err != nil {
		return Stage{}, fmt.Errorf("bake_time %q: %w", ps.BakeTime, err)
	}

	return Stage{
		Subnets:         ps.Subnets,
		BakeTime:        bakeTime,
		WaitForNextWeek: ps.WaitForNextWeek,
	}, nil
}

func (pr planRelease) toRelease() (Release, error) {
	if len(pr.Versions) == 0 {
		return Release{}, fmt.Errorf("release has no versions")
	}
	startDate, err := parseDate(pr.StartDate)
	if err != nil {
		return Release{}, fmt.Errorf("start_date %q: %w", pr.StartDate, err)
	}
	versions := make([]Version, 0, len(pr.Versions))
	for _, pv := range pr.Versions {
		versions = append(versions, Version{
			Name:          pv.Name,
			ID:            pv.Version,
			PinnedSubnets: pv.Subnets,
		})
	}
	return Release{
		RCName:    pr.RCName,
		StartDate: startDate,
		Versions:  versions,
	}, nil
}

var weekdayNames = map[string]time.Weekday{
	"Sun": time.Sunday, "Mon": time.Monday, "Tue": time.Tuesday,
	"Wed": time.Wednesday, "Thu": time.Thursday, "Fri": time.Friday,
	"Sat": time.Saturday,
}

func parseWeekdays(names []string) ([]time.Weekday, error) {
	days := make([]time.Weekday, 0, len(names))
	for _, name := range names {
		d, ok := weekdayNames[name]
		if !ok {
			return nil, newError(ErrorKindInvalidPlan, "ParsePlan", "unknown skip_days weekday: "+name, nil)
		}
		days = append(days, d)
	}
	return days, nil
}

// parseDate parses a YYYY-MM-DD calendar date as a UTC midnight
// time.Time (spec.md §6.1).
func parseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(time.DateOnly, s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// parseDuration extends time.ParseDuration with a trailing "d" (day =
// 24h) unit, since the stdlib parser has no concept of days and
// spec.md §6.1 allows "8h", "30m", "1h30m", and day-scale durations like
// "2d12h".
func parseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}

	var total time.Duration
	rest := s
	for len(rest) > 0 {
		i := 0
		for i < len(rest) && (rest[i] == '.' || (rest[i] >= '0' && rest[i] <= '9')) {
			i++
		}
		if i == 0 {
			return 0, fmt.Errorf("invalid duration %q", s)
		}
		numPart := rest[i:]
		j := 0
		for j < len(numPart) && !(numPart[j] >= '0' && numPart[j] <= '9') && numPart[j] != '.' {
			j++
		}
		unit := numPart[:j]
		if unit == "" {
			return 0, fmt.Errorf("invalid duration %q: missing unit", s)
		}

		value, err := strconv.ParseFloat(rest[:i], 64)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q: %w", s, err)
		}

		if unit == "d" {
			total += time.Duration(value * float64(24*time.Hour))
		} else {
			d, err := time.ParseDuration(rest[:i] + unit)
			if err != nil {
				return 0, fmt.Errorf("invalid duration %q: %w", s, err)
			}
			total += d
		}

		rest = numPart[j:]
	}
	return total, nil
}
