package fpl

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/fplpulse/fpl-dashboard/internal/platform/cache"
	"github.com/fplpulse/fpl-dashboard/internal/platform/logging"
	"github.com/fplpulse/fpl-dashboard/internal/platform/resilience"
	"github.com/fplpulse/fpl-dashboard/internal/usecase"
)

const (
	defaultBaseURL  = "https://fantasy.premierleague.com/api"
	defaultCacheTTL = time.Hour
	seasonLength    = 38

	bootstrapPath = "/bootstrap-static/"
	fixturesPath  = "/fixtures/"
)

var errFPLTransient = crerr.New("fpl transient failure")

var _ usecase.SportDataProvider = (*Client)(nil)

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	CacheTTL       time.Duration
	Clock          func() time.Time
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client fetches and memoizes the public fantasy API payloads. Every
// payload is cached for one TTL window, including degraded (empty)
// snapshots taken when the upstream fetch fails, so a flapping
// upstream is hit at most once per window per resource.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	cache          *cache.Store
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		maxRetries:     maxInt(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
		cache:          cache.NewStoreWithClock(ttl, clock),
	}
}

func (c *Client) Players(ctx context.Context) ([]usecase.ExternalPlayer, error) {
	env, err := c.bootstrap(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]usecase.ExternalPlayer, 0, len(env.Elements))
	for _, item := range env.Elements {
		out = append(out, usecase.ExternalPlayer{
			ID:         item.ID,
			Code:       item.Code,
			WebName:    item.WebName,
			FirstName:  item.FirstName,
			SecondName: item.SecondName,

			TeamID:     item.Team,
			PositionID: item.ElementType,
			Status:     item.Status,

			NowCost:     item.NowCost,
			TotalPoints: item.TotalPoints,
			Minutes:     item.Minutes,

			GoalsScored:     item.GoalsScored,
			Assists:         item.Assists,
			CleanSheets:     item.CleanSheets,
			GoalsConceded:   item.GoalsConceded,
			OwnGoals:        item.OwnGoals,
			PenaltiesSaved:  item.PenaltiesSaved,
			PenaltiesMissed: item.PenaltiesMissed,
			YellowCards:     item.YellowCards,
			RedCards:        item.RedCards,
			Saves:           item.Saves,
			Bonus:           item.Bonus,
			BPS:             item.BPS,

			Form:              item.Form,
			PointsPerGame:     item.PointsPerGame,
			Influence:         item.Influence,
			Creativity:        item.Creativity,
			Threat:            item.Threat,
			ICTIndex:          item.ICTIndex,
			SelectedByPercent: item.SelectedByPercent,
		})
	}
	return out, nil
}

func (c *Client) Teams(ctx context.Context) ([]usecase.ExternalTeam, error) {
	env, err := c.bootstrap(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]usecase.ExternalTeam, 0, len(env.Teams))
	for _, item := range env.Teams {
		out = append(out, usecase.ExternalTeam{
			ID:        item.ID,
			Code:      item.Code,
			Name:      item.Name,
			ShortName: item.ShortName,

			Strength:            item.Strength,
			StrengthAttackHome:  item.StrengthAttackHome,
			StrengthAttackAway:  item.StrengthAttackAway,
			StrengthDefenceHome: item.StrengthDefenceHome,
			StrengthDefenceAway: item.StrengthDefenceAway,
		})
	}
	return out, nil
}

func (c *Client) Positions(ctx context.Context) ([]usecase.ExternalPosition, error) {
	env, err := c.bootstrap(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]usecase.ExternalPosition, 0, len(env.ElementTypes))
	for _, item := range env.ElementTypes {
		out = append(out, usecase.ExternalPosition{
			ID:   item.ID,
			Name: item.SingularName,
		})
	}
	return out, nil
}

func (c *Client) Fixtures(ctx context.Context) ([]usecase.ExternalFixture, error) {
	items, err := c.fixtures(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]usecase.ExternalFixture, 0, len(items))
	for _, item := range items {
		out = append(out, usecase.ExternalFixture{
			ID:             item.ID,
			Gameweek:       item.Event,
			HomeTeamID:     item.TeamH,
			AwayTeamID:     item.TeamA,
			HomeDifficulty: item.TeamHDifficulty,
			AwayDifficulty: item.TeamADifficulty,
			Finished:       item.Finished,
		})
	}
	return out, nil
}

func (c *Client) PlayerHistory(ctx context.Context, playerID int) ([]usecase.ExternalGameweekStat, error) {
	if playerID <= 0 {
		return nil, fmt.Errorf("%w: player id must be greater than zero", usecase.ErrInvalidInput)
	}

	env, err := c.elementSummary(ctx, playerID)
	if err != nil {
		return nil, err
	}

	out := make([]usecase.ExternalGameweekStat, 0, len(env.History))
	for _, item := range env.History {
		out = append(out, usecase.ExternalGameweekStat{
			Gameweek:       item.Round,
			OpponentTeamID: item.OpponentTeam,
			WasHome:        item.WasHome,
			TotalPoints:    item.TotalPoints,
			Minutes:        item.Minutes,
			GoalsScored:    item.GoalsScored,
			Assists:        item.Assists,
			CleanSheets:    item.CleanSheets,
			GoalsConceded:  item.GoalsConceded,
			Bonus:          item.Bonus,
			Value:          item.Value,
		})
	}
	return out, nil
}

// CurrentGameweek resolves the round in progress. When no round is
// flagged current (pre-season, or the mid-season pause between two
// rounds) it falls back to the round before the next one, and to round
// one when the season has not started at all.
func (c *Client) CurrentGameweek(ctx context.Context) (int, error) {
	env, err := c.bootstrap(ctx)
	if err != nil {
		return 1, err
	}
	return currentGameweek(env.Events), nil
}

// NextGameweek resolves the first round still to be played, clamped to
// the final round of the season once no next round remains.
func (c *Client) NextGameweek(ctx context.Context) (int, error) {
	env, err := c.bootstrap(ctx)
	if err != nil {
		return 1, err
	}
	return nextGameweek(env.Events), nil
}

func currentGameweek(events []eventWire) int {
	for _, event := range events {
		if event.IsCurrent {
			return event.ID
		}
	}
	for _, event := range events {
		if event.IsNext {
			if event.ID > 1 {
				return event.ID - 1
			}
			return 1
		}
	}
	return 1
}

func nextGameweek(events []eventWire) int {
	for _, event := range events {
		if event.IsNext {
			return event.ID
		}
	}
	next := currentGameweek(events) + 1
	if next > seasonLength {
		return seasonLength
	}
	return next
}

type bootstrapSnapshot struct {
	payload  bootstrapEnvelope
	degraded bool
}

type fixturesSnapshot struct {
	payload  []fixtureWire
	degraded bool
}

type summarySnapshot struct {
	payload  elementSummaryEnvelope
	degraded bool
}

func (c *Client) bootstrap(ctx context.Context) (bootstrapEnvelope, error) {
	value, err := c.cache.GetOrLoad(ctx, bootstrapPath, func(ctx context.Context) (any, error) {
		var env bootstrapEnvelope
		if fetchErr := c.doJSON(ctx, bootstrapPath, &env); fetchErr != nil {
			c.logger.WarnContext(ctx, "bootstrap fetch failed, caching empty snapshot for this window", "error", fetchErr)
			return bootstrapSnapshot{degraded: true}, nil
		}
		return bootstrapSnapshot{payload: env}, nil
	})
	if err != nil {
		return bootstrapEnvelope{}, err
	}

	snap, ok := value.(bootstrapSnapshot)
	if !ok {
		return bootstrapEnvelope{}, fmt.Errorf("unexpected cached payload type %T", value)
	}
	if snap.degraded {
		return bootstrapEnvelope{}, fmt.Errorf("%w: fantasy API bootstrap data is unavailable", usecase.ErrDependencyUnavailable)
	}
	return snap.payload, nil
}

func (c *Client) fixtures(ctx context.Context) ([]fixtureWire, error) {
	value, err := c.cache.GetOrLoad(ctx, fixturesPath, func(ctx context.Context) (any, error) {
		var items []fixtureWire
		if fetchErr := c.doJSON(ctx, fixturesPath, &items); fetchErr != nil {
			c.logger.WarnContext(ctx, "fixtures fetch failed, caching empty snapshot for this window", "error", fetchErr)
			return fixturesSnapshot{degraded: true}, nil
		}
		return fixturesSnapshot{payload: items}, nil
	})
	if err != nil {
		return nil, err
	}

	snap, ok := value.(fixturesSnapshot)
	if !ok {
		return nil, fmt.Errorf("unexpected cached payload type %T", value)
	}
	if snap.degraded {
		return nil, fmt.Errorf("%w: fantasy API fixture data is unavailable", usecase.ErrDependencyUnavailable)
	}
	return snap.payload, nil
}

func (c *Client) elementSummary(ctx context.Context, playerID int) (elementSummaryEnvelope, error) {
	path := fmt.Sprintf("/element-summary/%d/", playerID)
	value, err := c.cache.GetOrLoad(ctx, path, func(ctx context.Context) (any, error) {
		var env elementSummaryEnvelope
		if fetchErr := c.doJSON(ctx, path, &env); fetchErr != nil {
			c.logger.WarnContext(ctx, "element summary fetch failed, caching empty snapshot for this window", "player_id", playerID, "error", fetchErr)
			return summarySnapshot{degraded: true}, nil
		}
		return summarySnapshot{payload: env}, nil
	})
	if err != nil {
		return elementSummaryEnvelope{}, err
	}

	snap, ok := value.(summarySnapshot)
	if !ok {
		return elementSummaryEnvelope{}, fmt.Errorf("unexpected cached payload type %T", value)
	}
	if snap.degraded {
		return elementSummaryEnvelope{}, fmt.Errorf("%w: fantasy API match history is unavailable", usecase.ErrDependencyUnavailable)
	}
	return snap.payload, nil
}

func (c *Client) doJSON(ctx context.Context, path string, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "fantasy API circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: fantasy API is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	raw, reqErr := c.executeRequest(ctx, c.baseURL+path)
	if c.circuitEnabled {
		if reqErr != nil && isFPLCircuitFailure(reqErr) {
			c.breaker.RecordFailure()
		} else {
			c.breaker.RecordSuccess()
		}
	}
	if reqErr != nil {
		return reqErr
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode provider payload: %w", err)
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %v", errFPLTransient, err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 6<<20))
			_ = resp.Body.Close()
			if readErr != nil {
				lastErr = fmt.Errorf("%w: read response body: %v", errFPLTransient, readErr)
			} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return raw, nil
			} else if isRetryableStatus(resp.StatusCode) {
				lastErr = fmt.Errorf("%w: provider status=%d body=%s", errFPLTransient, resp.StatusCode, abbreviateBody(raw))
			} else {
				return nil, fmt.Errorf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("provider request failed")
	}
	c.logger.WarnContext(ctx, "fantasy API request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func isFPLCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	return stderrors.Is(err, errFPLTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

func maxInt(left, right int) int {
	if left > right {
		return left
	}
	return right
}
