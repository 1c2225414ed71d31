package service

import (
	"fmt"
	"time"

	"github.com/masjidsuite/donations-service/subscription/domain"
)

// NextPaymentDate returns the next billing date after from, evaluated in the
// mosque timezone so month and year boundaries land on local dates.
func NextPaymentDate(from time.Time, frequency domain.Frequency, loc *time.Location) (time.Time, error) {
	t := from.In(loc)

	switch frequency {
	case domain.FrequencyWeekly:
		return t.AddDate(0, 0, 7), nil
	case domain.FrequencyFortnightly:
		return t.AddDate(0, 0, 14), nil
	case domain.FrequencyMonthly:
		return t.AddDate(0, 1, 0), nil
	case domain.FrequencyYearly:
		return t.AddDate(1, 0, 0), nil
	default:
		return time.Time{}, fmt.Errorf("unknown frequency %q", frequency)
	}
}

// FrequencyFromInterval maps a billing plan interval to a giving frequency.
func FrequencyFromInterval(interval string, intervalCount int64) (domain.Frequency, error) {
	switch {
	case interval == "week" && intervalCount == 1:
		return domain.FrequencyWeekly, nil
	case interval == "week" && intervalCount == 2:
		return domain.FrequencyFortnightly, nil
	case interval == "month" && intervalCount == 1:
		return domain.FrequencyMonthly, nil
	case interval == "year" && intervalCount == 1:
		return domain.FrequencyYearly, nil
	default:
		return "", fmt.Errorf("unsupported billing interval %d %s", intervalCount, interval)
	}
}
