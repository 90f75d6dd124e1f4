package mapper

import "time"

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func requiredTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
