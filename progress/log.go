package progress

import "github.com/sirupsen/logrus"

// LogTracker emits throttled progress lines through a logrus entry. It is
// safe for use by a single reporter; computations that report from
// multiple workers must serialize their Report calls.
type LogTracker struct {
	logger *logrus.Entry
	label  string
	total  int
	every  int
}

// NewLogTracker returns a Tracker that logs at most one line per
// total/20 reports (minimum one) plus a completion line on End.
func NewLogTracker(logger *logrus.Entry, label string, total int) *LogTracker {
	every := total / 20
	if every < 1 {
		every = 1
	}
	return &LogTracker{
		logger: logger,
		label:  label,
		total:  total,
		every:  every,
	}
}

func (t *LogTracker) Report(current int) {
	if current%t.every != 0 {
		return
	}
	t.logger.WithFields(logrus.Fields{
		"label":   t.label,
		"current": current,
		"total":   t.total,
	}).Info("progress")
}

func (t *LogTracker) End() {
	t.logger.WithFields(logrus.Fields{
		"label": t.label,
		"total": t.total,
	}).Info("done")
}
