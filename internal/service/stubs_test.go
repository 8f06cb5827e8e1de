package service

import (
	"context"
	"fmt"

	"pawnder/internal/models"
)

type matchRepoStub struct {
	createFn               func(context.Context, *models.Match) error
	getByIDFn              func(context.Context, uint) (*models.Match, error)
	getLiveEdgeFn          func(context.Context, uint, uint) (*models.Match, error)
	acceptPendingFn        func(context.Context, uint) (bool, error)
	softDeleteFn           func(context.Context, uint) error
	getLikesReceivedFn     func(context.Context, uint, []uint) ([]models.Match, error)
	countAcceptedForUserFn func(context.Context, uint) (int64, error)
	countPendingReceivedFn func(context.Context, uint, []uint) (int64, error)
	getAcceptedForPetsFn   func(context.Context, []uint) ([]models.Match, error)
	listLikedPetIDsFn      func(context.Context, uint) ([]uint, error)
}

func (s *matchRepoStub) Create(ctx context.Context, match *models.Match) error {
	return s.createFn(ctx, match)
}
func (s *matchRepoStub) GetByID(ctx context.Context, id uint) (*models.Match, error) {
	return s.getByIDFn(ctx, id)
}
func (s *matchRepoStub) GetLiveEdge(ctx context.Context, fromPetID, toPetID uint) (*models.Match, error) {
	return s.getLiveEdgeFn(ctx, fromPetID, toPetID)
}
func (s *matchRepoStub) AcceptPending(ctx context.Context, matchID uint) (bool, error) {
	return s.acceptPendingFn(ctx, matchID)
}
func (s *matchRepoStub) SoftDelete(ctx context.Context, matchID uint) error {
	return s.softDeleteFn(ctx, matchID)
}
func (s *matchRepoStub) GetLikesReceived(ctx context.Context, recipientUserID uint, petIDs []uint) ([]models.Match, error) {
	return s.getLikesReceivedFn(ctx, recipientUserID, petIDs)
}
func (s *matchRepoStub) CountAcceptedForUser(ctx context.Context, userID uint) (int64, error) {
	return s.countAcceptedForUserFn(ctx, userID)
}
func (s *matchRepoStub) CountPendingReceived(ctx context.Context, recipientUserID uint, petIDs []uint) (int64, error) {
	return s.countPendingReceivedFn(ctx, recipientUserID, petIDs)
}
func (s *matchRepoStub) GetAcceptedForPets(ctx context.Context, petIDs []uint) ([]models.Match, error) {
	return s.getAcceptedForPetsFn(ctx, petIDs)
}
func (s *matchRepoStub) ListLikedPetIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.listLikedPetIDsFn(ctx, userID)
}

func noopMatchRepo() *matchRepoStub {
	return &matchRepoStub{
		createFn:               func(context.Context, *models.Match) error { return nil },
		getByIDFn:              func(context.Context, uint) (*models.Match, error) { return &models.Match{}, nil },
		getLiveEdgeFn:          func(context.Context, uint, uint) (*models.Match, error) { return nil, nil },
		acceptPendingFn:        func(context.Context, uint) (bool, error) { return true, nil },
		softDeleteFn:           func(context.Context, uint) error { return nil },
		getLikesReceivedFn:     func(context.Context, uint, []uint) ([]models.Match, error) { return nil, nil },
		countAcceptedForUserFn: func(context.Context, uint) (int64, error) { return 0, nil },
		countPendingReceivedFn: func(context.Context, uint, []uint) (int64, error) { return 0, nil },
		getAcceptedForPetsFn:   func(context.Context, []uint) ([]models.Match, error) { return nil, nil },
		listLikedPetIDsFn:      func(context.Context, uint) ([]uint, error) { return nil, nil },
	}
}

type petRepoStub struct {
	createFn         func(context.Context, *models.Pet) error
	getByIDFn        func(context.Context, uint) (*models.Pet, error)
	getByUserIDFn    func(context.Context, uint) ([]models.Pet, error)
	getActivePetFn   func(context.Context, uint) (*models.Pet, error)
	setActiveFn      func(context.Context, uint, uint) error
	listCandidatesFn func(context.Context, []uint, []uint) ([]models.Pet, error)
	deleteFn         func(context.Context, uint) error
}

func (s *petRepoStub) Create(ctx context.Context, pet *models.Pet) error {
	return s.createFn(ctx, pet)
}
func (s *petRepoStub) GetByID(ctx context.Context, id uint) (*models.Pet, error) {
	return s.getByIDFn(ctx, id)
}
func (s *petRepoStub) GetByUserID(ctx context.Context, userID uint) ([]models.Pet, error) {
	return s.getByUserIDFn(ctx, userID)
}
func (s *petRepoStub) GetActivePet(ctx context.Context, userID uint) (*models.Pet, error) {
	return s.getActivePetFn(ctx, userID)
}
func (s *petRepoStub) SetActive(ctx context.Context, userID, petID uint) error {
	return s.setActiveFn(ctx, userID, petID)
}
func (s *petRepoStub) ListCandidates(ctx context.Context, excludeUserIDs, excludePetIDs []uint) ([]models.Pet, error) {
	return s.listCandidatesFn(ctx, excludeUserIDs, excludePetIDs)
}
func (s *petRepoStub) Delete(ctx context.Context, petID uint) error {
	return s.deleteFn(ctx, petID)
}

// ownedPetRepo resolves any pet ID to a pet owned by petID/100 (pet 101
// belongs to user 1, pet 203 to user 2). Keeps like tests terse.
func ownedPetRepo() *petRepoStub {
	return &petRepoStub{
		createFn: func(context.Context, *models.Pet) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Pet, error) {
			return &models.Pet{ID: id, UserID: id / 100}, nil
		},
		getByUserIDFn:    func(context.Context, uint) ([]models.Pet, error) { return nil, nil },
		getActivePetFn:   func(context.Context, uint) (*models.Pet, error) { return nil, nil },
		setActiveFn:      func(context.Context, uint, uint) error { return nil },
		listCandidatesFn: func(context.Context, []uint, []uint) ([]models.Pet, error) { return nil, nil },
		deleteFn:         func(context.Context, uint) error { return nil },
	}
}

type blockRepoStub struct {
	createFn             func(context.Context, *models.Block) error
	isBlockedFn          func(context.Context, uint, uint) (bool, error)
	listBlockedUserIDsFn func(context.Context, uint) ([]uint, error)
}

func (s *blockRepoStub) Create(ctx context.Context, block *models.Block) error {
	return s.createFn(ctx, block)
}
func (s *blockRepoStub) IsBlocked(ctx context.Context, userA, userB uint) (bool, error) {
	return s.isBlockedFn(ctx, userA, userB)
}
func (s *blockRepoStub) ListBlockedUserIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.listBlockedUserIDsFn(ctx, userID)
}

func noopBlockRepo() *blockRepoStub {
	return &blockRepoStub{
		createFn:             func(context.Context, *models.Block) error { return nil },
		isBlockedFn:          func(context.Context, uint, uint) (bool, error) { return false, nil },
		listBlockedUserIDsFn: func(context.Context, uint) ([]uint, error) { return nil, nil },
	}
}

// quotaRepoStub keeps real per-key counters so quota sequences behave like
// the upsert-backed table.
type quotaRepoStub struct {
	counts map[string]int
}

func newQuotaRepoStub() *quotaRepoStub {
	return &quotaRepoStub{counts: make(map[string]int)}
}

func (s *quotaRepoStub) key(userID uint, action models.ActionType, date string) string {
	return fmt.Sprintf("%d|%s|%s", userID, action, date)
}

func (s *quotaRepoStub) Increment(_ context.Context, userID uint, action models.ActionType, date string) (int, error) {
	k := s.key(userID, action, date)
	s.counts[k]++
	return s.counts[k], nil
}

func (s *quotaRepoStub) GetCount(_ context.Context, userID uint, action models.ActionType, date string) (int, error) {
	return s.counts[s.key(userID, action, date)], nil
}

type subsSourceStub struct {
	isVIPFn func(context.Context, uint) (bool, error)
}

func (s *subsSourceStub) IsVIP(ctx context.Context, userID uint) (bool, error) {
	return s.isVIPFn(ctx, userID)
}

func noVIP() *subsSourceStub {
	return &subsSourceStub{isVIPFn: func(context.Context, uint) (bool, error) { return false, nil }}
}

type chatSourceStub struct {
	unreadMatchesFn func(context.Context, []uint, []uint) ([]uint, error)
}

func (s *chatSourceStub) UnreadMatches(ctx context.Context, matchIDs, ownPetIDs []uint) ([]uint, error) {
	return s.unreadMatchesFn(ctx, matchIDs, ownPetIDs)
}

type userRepoStub struct {
	getByIDFn func(context.Context, uint) (*models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
	}
}

func unlimitedQuota() *QuotaService {
	return NewQuotaService(newQuotaRepoStub(), noVIP(), nil, 1000)
}
