package services

import (
	"context"

	"github.com/kalimuthu765/sports-connect/models"
	"github.com/kalimuthu765/sports-connect/repositories"
)

// Function-field fakes: each test fills in only the methods it expects to be
// called. An unexpected call panics on the nil function, which is exactly the
// failure we want.

type fakeAccountRepo struct {
	CreateFunc               func(ctx context.Context, account *models.Account) error
	GetByIDFunc              func(ctx context.Context, id int) (*models.Account, error)
	GetByEmailFunc           func(ctx context.Context, email string) (*models.Account, error)
	FindPlayerByEmailFunc    func(ctx context.Context, email string) (*models.Account, error)
	UpdateFunc               func(ctx context.Context, account *models.Account) error
	UpdateTeamIDFunc         func(ctx context.Context, exec repositories.SQLExecutor, accountID int, teamID *int) error
	UpdateAvatarKeyFunc      func(ctx context.Context, accountID int, avatarKey *string) error
	UpdateOverallStatsFunc   func(ctx context.Context, exec repositories.SQLExecutor, accountID int, stats models.StatMap) error
	ListRosterFunc           func(ctx context.Context, teamID int) ([]models.Account, error)
	ListTeamsFunc            func(ctx context.Context) ([]models.Account, error)
	ListBySportExcludingFunc func(ctx context.Context, sport string, excludeIDs []int, limit int) ([]models.Account, error)
}

func (f *fakeAccountRepo) Create(ctx context.Context, account *models.Account) error {
	return f.CreateFunc(ctx, account)
}

func (f *fakeAccountRepo) GetByID(ctx context.Context, id int) (*models.Account, error) {
	return f.GetByIDFunc(ctx, id)
}

func (f *fakeAccountRepo) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	return f.GetByEmailFunc(ctx, email)
}

func (f *fakeAccountRepo) FindPlayerByEmail(ctx context.Context, email string) (*models.Account, error) {
	return f.FindPlayerByEmailFunc(ctx, email)
}

func (f *fakeAccountRepo) Update(ctx context.Context, account *models.Account) error {
	return f.UpdateFunc(ctx, account)
}

func (f *fakeAccountRepo) UpdateTeamID(ctx context.Context, exec repositories.SQLExecutor, accountID int, teamID *int) error {
	return f.UpdateTeamIDFunc(ctx, exec, accountID, teamID)
}

func (f *fakeAccountRepo) UpdateAvatarKey(ctx context.Context, accountID int, avatarKey *string) error {
	return f.UpdateAvatarKeyFunc(ctx, accountID, avatarKey)
}

func (f *fakeAccountRepo) UpdateOverallStats(ctx context.Context, exec repositories.SQLExecutor, accountID int, stats models.StatMap) error {
	return f.UpdateOverallStatsFunc(ctx, exec, accountID, stats)
}

func (f *fakeAccountRepo) ListRoster(ctx context.Context, teamID int) ([]models.Account, error) {
	return f.ListRosterFunc(ctx, teamID)
}

func (f *fakeAccountRepo) ListTeams(ctx context.Context) ([]models.Account, error) {
	return f.ListTeamsFunc(ctx)
}

func (f *fakeAccountRepo) ListBySportExcluding(ctx context.Context, sport string, excludeIDs []int, limit int) ([]models.Account, error) {
	return f.ListBySportExcludingFunc(ctx, sport, excludeIDs, limit)
}

type fakeFollowRepo struct {
	AddFunc              func(ctx context.Context, followerID, targetID int) (bool, error)
	ListFollowerIDsFunc  func(ctx context.Context, accountID int) ([]int, error)
	ListFollowingIDsFunc func(ctx context.Context, accountID int) ([]int, error)
}

func (f *fakeFollowRepo) Add(ctx context.Context, followerID, targetID int) (bool, error) {
	return f.AddFunc(ctx, followerID, targetID)
}

func (f *fakeFollowRepo) ListFollowerIDs(ctx context.Context, accountID int) ([]int, error) {
	return f.ListFollowerIDsFunc(ctx, accountID)
}

func (f *fakeFollowRepo) ListFollowingIDs(ctx context.Context, accountID int) ([]int, error) {
	return f.ListFollowingIDsFunc(ctx, accountID)
}

type fakeCompetitionRepo struct {
	CreateFunc  func(ctx context.Context, competition *models.Competition) error
	GetByIDFunc func(ctx context.Context, id int) (*models.Competition, error)
	ListFunc    func(ctx context.Context, filter repositories.ListCompetitionsFilter) ([]models.Competition, error)
}

func (f *fakeCompetitionRepo) Create(ctx context.Context, competition *models.Competition) error {
	return f.CreateFunc(ctx, competition)
}

func (f *fakeCompetitionRepo) GetByID(ctx context.Context, id int) (*models.Competition, error) {
	return f.GetByIDFunc(ctx, id)
}

func (f *fakeCompetitionRepo) List(ctx context.Context, filter repositories.ListCompetitionsFilter) ([]models.Competition, error) {
	return f.ListFunc(ctx, filter)
}

type fakeRegistrationRepo struct {
	CreateFunc                   func(ctx context.Context, registration *models.Registration) error
	FindByCompetitionAndTeamFunc func(ctx context.Context, competitionID, teamID int) (*models.Registration, error)
	UpdateStatusFunc             func(ctx context.Context, id int, status models.ReviewStatus) error
	ListByCompetitionFunc        func(ctx context.Context, competitionID int) ([]models.Registration, error)
}

func (f *fakeRegistrationRepo) Create(ctx context.Context, registration *models.Registration) error {
	return f.CreateFunc(ctx, registration)
}

func (f *fakeRegistrationRepo) FindByCompetitionAndTeam(ctx context.Context, competitionID, teamID int) (*models.Registration, error) {
	return f.FindByCompetitionAndTeamFunc(ctx, competitionID, teamID)
}

func (f *fakeRegistrationRepo) UpdateStatus(ctx context.Context, id int, status models.ReviewStatus) error {
	return f.UpdateStatusFunc(ctx, id, status)
}

func (f *fakeRegistrationRepo) ListByCompetition(ctx context.Context, competitionID int) ([]models.Registration, error) {
	return f.ListByCompetitionFunc(ctx, competitionID)
}

type fakeJoinRequestRepo struct {
	CreateFunc              func(ctx context.Context, request *models.JoinRequest) error
	FindByIDFunc            func(ctx context.Context, id int) (*models.JoinRequest, error)
	FindByTeamAndPlayerFunc func(ctx context.Context, teamID, playerID int) (*models.JoinRequest, error)
	UpdateStatusFunc        func(ctx context.Context, exec repositories.SQLExecutor, id int, status models.ReviewStatus) error
	ListByTeamFunc          func(ctx context.Context, teamID int) ([]models.JoinRequest, error)
}

func (f *fakeJoinRequestRepo) Create(ctx context.Context, request *models.JoinRequest) error {
	return f.CreateFunc(ctx, request)
}

func (f *fakeJoinRequestRepo) FindByID(ctx context.Context, id int) (*models.JoinRequest, error) {
	return f.FindByIDFunc(ctx, id)
}

func (f *fakeJoinRequestRepo) FindByTeamAndPlayer(ctx context.Context, teamID, playerID int) (*models.JoinRequest, error) {
	return f.FindByTeamAndPlayerFunc(ctx, teamID, playerID)
}

func (f *fakeJoinRequestRepo) UpdateStatus(ctx context.Context, exec repositories.SQLExecutor, id int, status models.ReviewStatus) error {
	return f.UpdateStatusFunc(ctx, exec, id, status)
}

func (f *fakeJoinRequestRepo) ListByTeam(ctx context.Context, teamID int) ([]models.JoinRequest, error) {
	return f.ListByTeamFunc(ctx, teamID)
}

type fakeMatchRepo struct {
	CreateFunc            func(ctx context.Context, match *models.Match) error
	FindByIDFunc          func(ctx context.Context, competitionID, matchID int) (*models.Match, error)
	ListByCompetitionFunc func(ctx context.Context, competitionID int) ([]models.Match, error)
	UpdateScorecardFunc   func(ctx context.Context, competitionID, matchID int, update repositories.ScorecardUpdate) error
	UpdateStatusFunc      func(ctx context.Context, competitionID, matchID int, status models.MatchStatus) error
}

func (f *fakeMatchRepo) Create(ctx context.Context, match *models.Match) error {
	return f.CreateFunc(ctx, match)
}

func (f *fakeMatchRepo) FindByID(ctx context.Context, competitionID, matchID int) (*models.Match, error) {
	return f.FindByIDFunc(ctx, competitionID, matchID)
}

func (f *fakeMatchRepo) ListByCompetition(ctx context.Context, competitionID int) ([]models.Match, error) {
	return f.ListByCompetitionFunc(ctx, competitionID)
}

func (f *fakeMatchRepo) UpdateScorecard(ctx context.Context, competitionID, matchID int, update repositories.ScorecardUpdate) error {
	return f.UpdateScorecardFunc(ctx, competitionID, matchID, update)
}

func (f *fakeMatchRepo) UpdateStatus(ctx context.Context, competitionID, matchID int, status models.MatchStatus) error {
	return f.UpdateStatusFunc(ctx, competitionID, matchID, status)
}

type fakeStatRepo struct {
	AppendFunc        func(ctx context.Context, exec repositories.SQLExecutor, stat *models.MatchStat) error
	ListByAccountFunc func(ctx context.Context, accountID int) ([]models.MatchStat, error)
}

func (f *fakeStatRepo) Append(ctx context.Context, exec repositories.SQLExecutor, stat *models.MatchStat) error {
	return f.AppendFunc(ctx, exec, stat)
}

func (f *fakeStatRepo) ListByAccount(ctx context.Context, accountID int) ([]models.MatchStat, error) {
	return f.ListByAccountFunc(ctx, accountID)
}

// fakeTxRunner executes the transaction body directly with a nil executor.
type fakeTxRunner struct {
	Ran bool
}

func (f *fakeTxRunner) RunInTx(ctx context.Context, fn func(exec repositories.SQLExecutor) error) error {
	f.Ran = true
	return fn(nil)
}

type fakePublisher struct {
	Rooms    []string
	Messages []interface{}
}

func (f *fakePublisher) BroadcastToRoom(roomID string, message interface{}) {
	f.Rooms = append(f.Rooms, roomID)
	f.Messages = append(f.Messages, message)
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
