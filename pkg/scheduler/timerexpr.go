package scheduler

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/codeready-toolchain/pythmata/pkg/bpmn"
	"github.com/codeready-toolchain/pythmata/pkg/engineerr"
)

// ParsedTimer is the outcome of parsing a bpmn.TimerDefinition's Value
// against the three forms ISO-8601 allows a BPMN timer expression to take
//: a one-shot duration, a bounded/unbounded repeating interval, or an
// absolute instant.
type ParsedTimer struct {
	Type     string // duration | repetition | date
	Duration time.Duration
	Repeats  int // -1 means unbounded; only meaningful for Type == repetition
	At       time.Time
}

var isoDurationPattern = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)
var isoRepetitionPattern = regexp.MustCompile(`^R(\d*)/(PT.*)$`)

// ParseTimerExpression parses def.Value by its form: a repetition, then a
// duration, then an RFC3339 instant. def.Type is not consulted.
func ParseTimerExpression(def *bpmn.TimerDefinition) (*ParsedTimer, error) {
	if def == nil || def.Value == "" {
		return nil, engineerr.NewSchedulingError("empty timer expression")
	}
	value := def.Value

	if m := isoRepetitionPattern.FindStringSubmatch(value); m != nil {
		d, err := parseISODuration(m[2])
		if err != nil {
			return nil, engineerr.WrapSchedulingError(err, "parsing repetition interval %q", value)
		}
		repeats := -1
		if m[1] != "" {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				return nil, engineerr.WrapSchedulingError(err, "parsing repetition count %q", value)
			}
			repeats = n
		}
		return &ParsedTimer{Type: "repetition", Duration: d, Repeats: repeats}, nil
	}

	if isoDurationPattern.MatchString(value) {
		d, err := parseISODuration(value)
		if err != nil {
			return nil, engineerr.WrapSchedulingError(err, "parsing duration %q", value)
		}
		return &ParsedTimer{Type: "duration", Duration: d}, nil
	}

	at, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, engineerr.NewSchedulingError("timer expression %q is neither a duration, a repetition, nor an RFC3339 instant", value)
	}
	return &ParsedTimer{Type: "date", At: at}, nil
}

func parseISODuration(s string) (time.Duration, error) {
	m := isoDurationPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("not an ISO-8601 duration: %q", s)
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	seconds, _ := strconv.Atoi(m[3])
	return time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute + time.Duration(seconds)*time.Second, nil
}

// NextFireTime computes the next run time for p relative to from. For a
// repetition timer, remaining < 0 means unbounded (always returns a time);
// remaining == 0 means exhausted (ok is false).
func NextFireTime(p *ParsedTimer, from time.Time, remaining *int) (t time.Time, ok bool) {
	switch p.Type {
	case "duration":
		return from.Add(p.Duration), true
	case "date":
		if p.At.Before(from) {
			return from, true
		}
		return p.At, true
	case "repetition":
		if remaining != nil && *remaining == 0 {
			return time.Time{}, false
		}
		return from.Add(p.Duration), true
	default:
		return time.Time{}, false
	}
}
