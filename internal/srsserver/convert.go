package srsserver

import (
	"cloud.google.com/go/civil"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/domino14/srs_server/api/rpc/srs"
	"github.com/domino14/srs_server/internal/srs"
)

func pbCard(rec srs.CardSchedulingRecord) *pb.Card {
	c := &pb.Card{
		CardId:       rec.CardID,
		EaseFactor:   rec.EaseFactor,
		IntervalDays: rec.IntervalDays,
		Repetitions:  rec.Repetitions,
		Version:      rec.Version,
	}
	if rec.Queue != nil {
		c.IsNew = true
		c.QueuePosition = int32(*rec.Queue)
	}
	if rec.Due != nil {
		c.Due = rec.Due.String()
	}
	if rec.LastReviewedAt != nil {
		c.LastReviewedAt = timestamppb.New(*rec.LastReviewedAt)
	}
	return c
}

// pbDays lists the logged days of counts in [start, end], ascending.
func pbDays(counts map[civil.Date]uint32, start, end civil.Date) []*pb.DayCount {
	days := make([]*pb.DayCount, 0, len(counts))
	for d := start; !d.After(end); d = d.AddDays(1) {
		if n, ok := counts[d]; ok {
			days = append(days, &pb.DayCount{Date: d.String(), Count: n})
		}
	}
	return days
}

func parseDate(field, s string) (civil.Date, error) {
	d, err := civil.ParseDate(s)
	if err != nil {
		return civil.Date{}, invalidArgError(field + " must be a YYYY-MM-DD date")
	}
	return d, nil
}
