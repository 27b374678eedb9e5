package scoring

import (
	"time"

	"adhd-task-assistant/internal/model"
	"adhd-task-assistant/pkg/datemath"
)

func datemathParser(now time.Time) model.DueResolver {
	return datemath.NewParserInLocation(now.Location())
}
