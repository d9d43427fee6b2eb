package wageengine

import (
	"github.com/google/uuid"

	"github.com/tolga/wagecalc/internal/model"
	"github.com/tolga/wagecalc/internal/timeutil"
)

// Night-shift dynamic decomposition constants (spec §4.3).
const (
	nightFirstWorkMinutes = 120
	nightWorkResumeMinute = 390 // 06:30
)

// ResolveEffectiveShiftKind applies the implicit-tagbur rule (spec §4.3):
// a report with kind 105 or 106 at a therapeutic apartment whose
// housing-rate override resolves to the regular-apartment cluster is
// treated as tagbur (108/109 respectively). Called by the service layer
// before it resolves the shift template, so SegmentBuilder itself only
// ever dispatches on an already-effective kind.
func ResolveEffectiveShiftKind(raw model.ShiftKindID, apartmentType, resolvedCluster model.ApartmentType) model.ShiftKindID {
	if apartmentType != model.ApartmentTypeTherapeutic || resolvedCluster != model.ApartmentTypeRegular {
		return raw
	}
	switch raw {
	case model.ShiftKindFriday:
		return model.ShiftKindTagburFriday
	case model.ShiftKindShabbat:
		return model.ShiftKindTagburShabbat
	default:
		return raw
	}
}

// BuildSegments decomposes one report into an ordered list of segments
// (spec §4.3). Returns a MalformedReport warning and no segments if the
// report fails the normalization or template-bounds checks. snap is only
// used to split escort segments at Sabbath boundaries; it is otherwise
// read-only reference data, never a source of additional lookups.
func BuildSegments(report ReportInput, snap ReferenceSnapshot) ([]Segment, *Warning) {
	start := report.StartMinute
	end := timeutil.NormalizeCrossMidnight(start, report.EndMinute)
	if end <= start {
		return nil, &Warning{Code: WarnCodeMalformedReport, ReportID: report.ID, Message: "non-positive duration after overnight normalization"}
	}

	if report.IsVacation || report.IsSick {
		kind := SegmentVacation
		if report.IsSick {
			kind = SegmentSick
		}
		return []Segment{newSegment(report, kind, start, end, uuid.Nil, 0)}, nil
	}

	switch report.ShiftKindID {
	case model.ShiftKindNight:
		return buildNightSegments(report, start, end), nil
	case model.ShiftKindHospitalEscort, model.ShiftKindMedicalEscort:
		return buildEscortSegments(report, start, end, snap), nil
	default:
		return buildFixedTemplateSegments(report, start, end)
	}
}

func newSegment(report ReportInput, kind SegmentKind, start, end int, segmentID uuid.UUID, orderIndex int) Segment {
	return Segment{
		Kind:          kind,
		SegmentID:     segmentID,
		StartMinute:   start,
		EndMinute:     end,
		OrderIndex:    orderIndex,
		ReportID:      report.ID,
		PersonID:      report.PersonID,
		ApartmentID:   report.ApartmentID,
		Date:          report.Date,
		ApartmentType: report.ApartmentType,
		IsMarried:     report.IsMarried,
	}
}

// buildFixedTemplateSegments emits the shift kind's template segments
// clipped to [start, end) (kinds 105, 106, 108, 109).
func buildFixedTemplateSegments(report ReportInput, start, end int) ([]Segment, *Warning) {
	var segments []Segment
	for _, t := range report.ShiftTemplate.TemplateSegments {
		if t.StartMinute < 0 || t.EndMinute > 2880 || t.EndMinute <= t.StartMinute {
			return nil, &Warning{Code: WarnCodeMalformedReport, ReportID: report.ID, Message: "shift-template segment outside 0..2880"}
		}
		clippedStart, clippedEnd := clip(t.StartMinute, t.EndMinute, start, end)
		if clippedEnd <= clippedStart {
			continue
		}
		kind := SegmentWork
		if t.Type == model.SegmentTypeStandby {
			kind = SegmentStandby
		}
		segments = append(segments, newSegment(report, kind, clippedStart, clippedEnd, t.SegmentID, t.OrderIndex))
	}
	return segments, nil
}

// buildNightSegments implements kind 107's dynamic decomposition.
func buildNightSegments(report ReportInput, start, end int) []Segment {
	if end-start < nightFirstWorkMinutes {
		return []Segment{newSegment(report, SegmentWork, start, end, uuid.Nil, 0)}
	}

	firstWorkEnd := start + nightFirstWorkMinutes
	nextBoundary := nightWorkResumeMinute
	for nextBoundary <= start {
		nextBoundary += timeutil.MinutesPerDay
	}
	standbyEnd := min(end, nextBoundary)

	var segments []Segment
	segments = append(segments, newSegment(report, SegmentWork, start, firstWorkEnd, uuid.Nil, 0))
	if standbyEnd > firstWorkEnd {
		segments = append(segments, newSegment(report, SegmentStandby, firstWorkEnd, standbyEnd, uuid.Nil, 1))
	}
	if end > standbyEnd {
		segments = append(segments, newSegment(report, SegmentWork, standbyEnd, end, uuid.Nil, 2))
	}
	return segments
}

// buildEscortSegments implements hospital (120) and medical (148) escort:
// the whole report is work, split at Sabbath boundaries so the aggregator
// can apply minimum wage to the Sabbath pieces and the flat rate elsewhere
// (spec §4.3).
func buildEscortSegments(report ReportInput, start, end int, snap ReferenceSnapshot) []Segment {
	whole := newSegment(report, SegmentWork, start, end, uuid.Nil, 0)
	pieces := SplitAtSabbathBoundaries(whole, snap)
	rate := report.EscortFlatRate
	for i := range pieces {
		if isSabbathSlice(pieces[i], snap) {
			pieces[i].MinimumWageOverride = true
		} else {
			pieces[i].FlatRate = &rate
		}
		pieces[i].OrderIndex = i
	}
	return pieces
}

func clip(segStart, segEnd, windowStart, windowEnd int) (int, int) {
	s := max(segStart, windowStart)
	e := min(segEnd, windowEnd)
	return s, e
}
