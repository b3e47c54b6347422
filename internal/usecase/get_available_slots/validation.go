package get_available_slots

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/studio-service/internal/domain"
)

// parseDate разбирает дату запроса в часовом поясе студии
func parseDate(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, ErrDateRequired
	}

	date, err := time.ParseInLocation(domain.DateFormat, raw, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}

	return date, nil
}
