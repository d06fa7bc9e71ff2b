package srsserver

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/civil"
	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	pb "github.com/domino14/srs_server/api/rpc/srs"
	"github.com/domino14/srs_server/config"
	"github.com/domino14/srs_server/internal/activity"
	"github.com/domino14/srs_server/internal/auth"
	"github.com/domino14/srs_server/internal/queue"
	"github.com/domino14/srs_server/internal/session"
	"github.com/domino14/srs_server/internal/srs"
	"github.com/domino14/srs_server/internal/stores"
)

type Server struct {
	Config   *config.Config
	Store    stores.Store
	Queue    *queue.Manager
	Sessions *session.Builder
	Started  *session.Registry
	Reviewer *session.Reviewer
	Location *time.Location
	Nower    srs.Nower
	// signingKey signs the baselines handed out by ScoreCard.
	signingKey []byte
}

// NewServer wires the engine components over store. counter deduplicates
// activity across requests; pass a RedisCounter when running more than one
// server process.
func NewServer(cfg *config.Config, store stores.Store, counter session.Counter) (*Server, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	if cfg.SecretKey == "" {
		return nil, errors.New("a secret key is required")
	}
	scheduler := srs.Scheduler{Location: loc}
	nower := srs.RealNower{}
	return &Server{
		Config:     cfg,
		Store:      store,
		Queue:      queue.NewManager(store, cfg.MaxCardsAdd),
		Sessions:   session.NewBuilder(store, scheduler, counter),
		Started:    session.NewRegistry(),
		Reviewer:   &session.Reviewer{Store: store, Counter: counter, Scheduler: scheduler, Nower: nower},
		Location:   loc,
		Nower:      nower,
		signingKey: []byte(cfg.SecretKey),
	}, nil
}

// SetNower replaces the clock of every component.
func (s *Server) SetNower(n srs.Nower) {
	s.Nower = n
	s.Sessions.Nower = n
	s.Reviewer.Nower = n
}

func unauthenticated(msg string) *connect.Error {
	return connect.NewError(connect.CodeUnauthenticated, errors.New(msg))
}

func invalidArgError(msg string) *connect.Error {
	return connect.NewError(connect.CodeInvalidArgument, errors.New(msg))
}

// connectError maps engine error kinds onto connect codes.
func connectError(err error) error {
	if err == nil {
		return nil
	}
	var cerr *connect.Error
	if errors.As(err, &cerr) {
		return cerr
	}
	switch {
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	}
	code := connect.CodeInternal
	switch srs.KindOf(err) {
	case srs.InvalidRating, srs.InvalidArgument:
		code = connect.CodeInvalidArgument
	case srs.RecordsNotFound:
		code = connect.CodeFailedPrecondition
	case srs.NotFound:
		code = connect.CodeNotFound
	case srs.Conflict:
		code = connect.CodeAborted
	case srs.CorruptState:
		code = connect.CodeDataLoss
	case srs.StoreUnavailable:
		code = connect.CodeUnavailable
	}
	return connect.NewError(code, err)
}

func userID(ctx context.Context) (int64, error) {
	user := auth.UserFromContext(ctx)
	if user == nil {
		return 0, unauthenticated("user not authenticated")
	}
	return user.DBID, nil
}

func (s *Server) dateOrToday(d string) (civil.Date, error) {
	if d == "" {
		return srs.Today(s.Nower, s.Location), nil
	}
	return parseDate("date", d)
}

func (s *Server) AddCards(ctx context.Context, req *connect.Request[pb.CardIDsRequest]) (
	*connect.Response[pb.AddCardsResponse], error) {

	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	res, err := s.Queue.AddCards(ctx, uid, req.Msg.CardIds)
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&pb.AddCardsResponse{
		Added:         res.Added,
		Skipped:       res.Skipped,
		FirstPosition: int32(res.FirstPosition),
	}), nil
}

func (s *Server) RemoveCards(ctx context.Context, req *connect.Request[pb.CardIDsRequest]) (
	*connect.Response[pb.RemoveCardsResponse], error) {

	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	n, err := s.Queue.RemoveCards(ctx, uid, req.Msg.CardIds)
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&pb.RemoveCardsResponse{NumRemoved: uint32(n)}), nil
}

func (s *Server) MoveToTop(ctx context.Context, req *connect.Request[pb.CardIDsRequest]) (
	*connect.Response[pb.MoveToTopResponse], error) {

	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.Queue.MoveToTop(ctx, uid, req.Msg.CardIds); err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&pb.MoveToTopResponse{}), nil
}

func (s *Server) NextQueuePosition(ctx context.Context, req *connect.Request[pb.NextQueuePositionRequest]) (
	*connect.Response[pb.QueuePositionResponse], error) {

	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	pos, err := s.Queue.EnqueueNew(ctx, uid)
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&pb.QueuePositionResponse{Position: int32(pos)}), nil
}

func (s *Server) BuildSession(ctx context.Context, req *connect.Request[pb.DateRequest]) (
	*connect.Response[pb.BuildSessionResponse], error) {

	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	date, err := s.dateOrToday(req.Msg.Date)
	if err != nil {
		return nil, err
	}
	cards, err := s.Sessions.BuildSession(ctx, uid, date)
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&pb.BuildSessionResponse{Date: date.String(), CardIds: cards}), nil
}

// StartSession builds a session and keeps it, with the baseline of every card
// in it, until RateCard calls are done with it.
func (s *Server) StartSession(ctx context.Context, req *connect.Request[pb.DateRequest]) (
	*connect.Response[pb.StartSessionResponse], error) {

	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	date, err := s.dateOrToday(req.Msg.Date)
	if err != nil {
		return nil, err
	}
	sess, err := s.Sessions.Start(ctx, uid, date)
	if err != nil {
		return nil, connectError(err)
	}
	s.Started.Add(sess)
	return connect.NewResponse(&pb.StartSessionResponse{
		SessionId: sess.ID.String(),
		Date:      date.String(),
		CardIds:   sess.Cards,
	}), nil
}

// RateCard rates a card of a started session from the baseline captured at
// start. Rating the same card again revises the earlier rating.
func (s *Server) RateCard(ctx context.Context, req *connect.Request[pb.RateCardRequest]) (
	*connect.Response[pb.CardResponse], error) {

	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(req.Msg.SessionId)
	if err != nil {
		return nil, invalidArgError("session_id is not a valid id")
	}
	rating, err := srs.ParseRating(req.Msg.Rating)
	if err != nil {
		return nil, connectError(err)
	}
	sess, ok := s.Started.Get(id, uid)
	if !ok {
		return nil, connect.NewError(connect.CodeNotFound, errors.New("session not found"))
	}
	_, revision := sess.Rated(req.Msg.CardId)
	rec, err := sess.Rate(ctx, req.Msg.CardId, rating)
	if err != nil {
		return nil, connectError(err)
	}
	reviewsTotal.WithLabelValues(rating.String(), boolLabel(revision)).Inc()
	return connect.NewResponse(&pb.CardResponse{Card: pbCard(rec)}), nil
}

func (s *Server) GetCard(ctx context.Context, req *connect.Request[pb.GetCardRequest]) (
	*connect.Response[pb.CardResponse], error) {

	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	rec, err := s.Store.GetCard(ctx, uid, req.Msg.CardId)
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&pb.CardResponse{Card: pbCard(rec)}), nil
}

// ScoreCard rates a card using its stored state as the baseline.
func (s *Server) ScoreCard(ctx context.Context, req *connect.Request[pb.ScoreCardRequest]) (
	*connect.Response[pb.ScoreCardResponse], error) {

	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	rating, err := srs.ParseRating(req.Msg.Rating)
	if err != nil {
		return nil, connectError(err)
	}
	baseline, err := s.Store.GetCard(ctx, uid, req.Msg.CardId)
	if err != nil {
		return nil, connectError(err)
	}
	next, err := s.Reviewer.Review(ctx, baseline, baseline.Version, rating)
	if err != nil {
		return nil, connectError(err)
	}
	reviewsTotal.WithLabelValues(rating.String(), "false").Inc()
	return s.scoreResponse(next, baseline)
}

// EditLastScore revises a rating. The new rating is applied to the baseline
// signed into the token ScoreCard returned, not to the card's current state,
// so it replaces the earlier rating rather than stacking on it.
func (s *Server) EditLastScore(ctx context.Context, req *connect.Request[pb.EditLastScoreRequest]) (
	*connect.Response[pb.ScoreCardResponse], error) {

	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	rating, err := srs.ParseRating(req.Msg.Rating)
	if err != nil {
		return nil, connectError(err)
	}
	baseline, version, err := parseBaseline(s.signingKey, req.Msg.BaselineToken, uid, s.Nower.Now())
	if err != nil {
		return nil, err
	}
	next, err := s.Reviewer.Review(ctx, baseline, version, rating)
	if err != nil {
		return nil, connectError(err)
	}
	reviewsTotal.WithLabelValues(rating.String(), "true").Inc()
	log.Ctx(ctx).Info().Int64("userID", uid).Str("card", baseline.CardID).Msg("score-edited")
	return s.scoreResponse(next, baseline)
}

func (s *Server) scoreResponse(next, baseline srs.CardSchedulingRecord) (
	*connect.Response[pb.ScoreCardResponse], error) {

	tok, err := signBaseline(s.signingKey, baseline, next.Version, s.Nower.Now())
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&pb.ScoreCardResponse{
		Card:          pbCard(next),
		Baseline:      pbCard(baseline),
		BaselineToken: tok,
	}), nil
}

func (s *Server) RemainingNewQuota(ctx context.Context, req *connect.Request[pb.DateRequest]) (
	*connect.Response[pb.QuotaResponse], error) {

	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	date, err := s.dateOrToday(req.Msg.Date)
	if err != nil {
		return nil, err
	}
	n, err := activity.NewTracker(s.Store).RemainingNewQuota(ctx, uid, date)
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&pb.QuotaResponse{Remaining: n}), nil
}

func (s *Server) CurrentStreak(ctx context.Context, req *connect.Request[pb.DateRequest]) (
	*connect.Response[pb.StreakResponse], error) {

	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	date, err := s.dateOrToday(req.Msg.Date)
	if err != nil {
		return nil, err
	}
	n, err := activity.NewTracker(s.Store).CurrentStreak(ctx, uid, date)
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&pb.StreakResponse{Streak: n}), nil
}

func (s *Server) ConsistencyMap(ctx context.Context, req *connect.Request[pb.ConsistencyMapRequest]) (
	*connect.Response[pb.ConsistencyMapResponse], error) {

	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	start, err := parseDate("start", req.Msg.Start)
	if err != nil {
		return nil, err
	}
	end, err := parseDate("end", req.Msg.End)
	if err != nil {
		return nil, err
	}
	counts, err := activity.NewTracker(s.Store).ConsistencyMap(ctx, uid, start, end)
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&pb.ConsistencyMapResponse{Days: pbDays(counts, start, end)}), nil
}

func (s *Server) DueCount(ctx context.Context, req *connect.Request[pb.DateRequest]) (
	*connect.Response[pb.DueCountResponse], error) {

	uid, err := userID(ctx)
	if err != nil {
		return nil, err
	}
	date, err := s.dateOrToday(req.Msg.Date)
	if err != nil {
		return nil, err
	}
	n, err := s.Store.CountDue(ctx, uid, date)
	if err != nil {
		return nil, connectError(err)
	}
	return connect.NewResponse(&pb.DueCountResponse{Count: uint32(n)}), nil
}

func boolLabel(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
