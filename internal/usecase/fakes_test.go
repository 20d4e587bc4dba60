package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"ethiohomes/internal/domain/entity"
	"ethiohomes/internal/domain/repository"
	"ethiohomes/pkg/errors"
)

// In-memory repository fakes. They mirror the Firestore implementations
// closely enough to exercise the use cases, including the transactional
// methods: a fake transaction validates everything first and only then
// writes, so a failed step leaves every record untouched.

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) List(ctx context.Context, role string, limit, offset int) ([]*entity.User, int64, error) {
	var out []*entity.User
	for _, u := range r.users {
		if role == "" || u.Role == role {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return errors.NotFound("User", nil)
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	delete(r.users, id)
	return nil
}

type fakeListingRepo struct {
	listings map[string]*entity.Listing
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{listings: make(map[string]*entity.Listing)}
}

func (r *fakeListingRepo) Create(ctx context.Context, listing *entity.Listing) error {
	if listing.ID == "" {
		listing.ID = uuid.New().String()
	}
	cp := *listing
	r.listings[listing.ID] = &cp
	return nil
}

func (r *fakeListingRepo) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	l, ok := r.listings[id]
	if !ok {
		return nil, errors.NotFound("Listing", nil)
	}
	cp := *l
	return &cp, nil
}

func matchesFilter(l *entity.Listing, filter map[string]interface{}) bool {
	for key, value := range filter {
		switch key {
		case "status":
			if string(l.Status) != value.(string) {
				return false
			}
		case "source":
			if l.Source != value.(string) {
				return false
			}
		case "ownerId":
			if l.OwnerID != value.(string) {
				return false
			}
		case "type":
			if l.Type != value.(string) {
				return false
			}
		case "city":
			if l.City != value.(string) {
				return false
			}
		case "min_price":
			if l.Price < value.(int64) {
				return false
			}
		case "max_price":
			if l.Price > value.(int64) {
				return false
			}
		}
	}
	return true
}

func (r *fakeListingRepo) List(ctx context.Context, filter map[string]interface{}, sort string, limit, offset int) ([]*entity.Listing, int64, error) {
	var out []*entity.Listing
	for _, l := range r.listings {
		if matchesFilter(l, filter) {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeListingRepo) SearchByTitle(ctx context.Context, query string, filter map[string]interface{}, limit, offset int) ([]*entity.Listing, int64, error) {
	var out []*entity.Listing
	for _, l := range r.listings {
		if matchesFilter(l, filter) && strings.Contains(strings.ToLower(l.Title), strings.ToLower(query)) {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeListingRepo) ListByOwnerID(ctx context.Context, ownerID string, status entity.ListingStatus, limit, offset int) ([]*entity.Listing, int64, error) {
	var out []*entity.Listing
	for _, l := range r.listings {
		if l.OwnerID == ownerID && (status == "" || l.Status == status) {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeListingRepo) Update(ctx context.Context, listing *entity.Listing) error {
	if _, ok := r.listings[listing.ID]; !ok {
		return errors.NotFound("Listing", nil)
	}
	cp := *listing
	r.listings[listing.ID] = &cp
	return nil
}

func (r *fakeListingRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.listings[id]; !ok {
		return errors.NotFound("Listing", nil)
	}
	delete(r.listings, id)
	return nil
}

func (r *fakeListingRepo) DeleteWhere(ctx context.Context, filter map[string]interface{}) (int, error) {
	deleted := 0
	for id, l := range r.listings {
		if matchesFilter(l, filter) {
			delete(r.listings, id)
			deleted++
		}
	}
	return deleted, nil
}

func (r *fakeListingRepo) IncrementViews(ctx context.Context, id string) error {
	if l, ok := r.listings[id]; ok {
		l.Views++
	}
	return nil
}

func (r *fakeListingRepo) CountByStatus(ctx context.Context) (map[entity.ListingStatus]int64, error) {
	counts := make(map[entity.ListingStatus]int64)
	for _, l := range r.listings {
		counts[l.Status]++
	}
	return counts, nil
}

type fakeSubmissionRepo struct {
	submissions map[string]*entity.GuestSubmission
	listingRepo *fakeListingRepo
}

func newFakeSubmissionRepo(listingRepo *fakeListingRepo) *fakeSubmissionRepo {
	return &fakeSubmissionRepo{
		submissions: make(map[string]*entity.GuestSubmission),
		listingRepo: listingRepo,
	}
}

func (r *fakeSubmissionRepo) Create(ctx context.Context, submission *entity.GuestSubmission) error {
	if submission.ID == "" {
		submission.ID = uuid.New().String()
	}
	cp := *submission
	r.submissions[submission.ID] = &cp
	return nil
}

func (r *fakeSubmissionRepo) GetByID(ctx context.Context, id string) (*entity.GuestSubmission, error) {
	s, ok := r.submissions[id]
	if !ok {
		return nil, errors.NotFound("Submission", nil)
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSubmissionRepo) List(ctx context.Context, status entity.ReviewStatus, limit, offset int) ([]*entity.GuestSubmission, int64, error) {
	var out []*entity.GuestSubmission
	for _, s := range r.submissions {
		if status == "" || s.Status == status {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeSubmissionRepo) Update(ctx context.Context, submission *entity.GuestSubmission) error {
	if _, ok := r.submissions[submission.ID]; !ok {
		return errors.NotFound("Submission", nil)
	}
	cp := *submission
	r.submissions[submission.ID] = &cp
	return nil
}

func (r *fakeSubmissionRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.submissions[id]; !ok {
		return errors.NotFound("Submission", nil)
	}
	delete(r.submissions, id)
	return nil
}

func (r *fakeSubmissionRepo) ApproveWithListing(ctx context.Context, submission *entity.GuestSubmission, listing *entity.Listing) error {
	if _, ok := r.submissions[submission.ID]; !ok {
		return errors.NotFound("Submission", nil)
	}
	if err := r.listingRepo.Create(ctx, listing); err != nil {
		return err
	}
	submission.Status = entity.ReviewStatusApproved
	submission.PropertyID = listing.ID
	cp := *submission
	r.submissions[submission.ID] = &cp
	return nil
}

type fakeApplicationRepo struct {
	applications map[string]*entity.RoleApplication
	userRepo     *fakeUserRepo
	listingRepo  *fakeListingRepo
}

func newFakeApplicationRepo(userRepo *fakeUserRepo, listingRepo *fakeListingRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{
		applications: make(map[string]*entity.RoleApplication),
		userRepo:     userRepo,
		listingRepo:  listingRepo,
	}
}

func (r *fakeApplicationRepo) Create(ctx context.Context, application *entity.RoleApplication) error {
	if application.ID == "" {
		application.ID = uuid.New().String()
	}
	cp := *application
	r.applications[application.ID] = &cp
	return nil
}

func (r *fakeApplicationRepo) GetByID(ctx context.Context, id string) (*entity.RoleApplication, error) {
	a, ok := r.applications[id]
	if !ok {
		return nil, errors.NotFound("Application", nil)
	}
	cp := *a
	return &cp, nil
}

func (r *fakeApplicationRepo) GetByUserID(ctx context.Context, userID string) (*entity.RoleApplication, error) {
	for _, a := range r.applications {
		if a.UserID == userID {
			cp := *a
			return &cp, nil
		}
	}
	return nil, errors.NotFound("Application", nil)
}

func (r *fakeApplicationRepo) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.RoleApplication, int64, error) {
	var out []*entity.RoleApplication
	for _, a := range r.applications {
		if t, ok := filter["type"]; ok && a.Type != t.(string) {
			continue
		}
		if s, ok := filter["status"]; ok && string(a.Status) != s.(string) {
			continue
		}
		cp := *a
		out = append(out, &cp)
	}
	return out, int64(len(out)), nil
}

func (r *fakeApplicationRepo) Update(ctx context.Context, application *entity.RoleApplication) error {
	if _, ok := r.applications[application.ID]; !ok {
		return errors.NotFound("Application", nil)
	}
	cp := *application
	r.applications[application.ID] = &cp
	return nil
}

func (r *fakeApplicationRepo) Delete(ctx context.Context, id string) error {
	delete(r.applications, id)
	return nil
}

func (r *fakeApplicationRepo) DeleteByStatus(ctx context.Context, status entity.ReviewStatus) (int, error) {
	deleted := 0
	for id, a := range r.applications {
		if a.Status == status {
			delete(r.applications, id)
			deleted++
		}
	}
	return deleted, nil
}

func (r *fakeApplicationRepo) UpdateWithUser(ctx context.Context, application *entity.RoleApplication, user *entity.User) error {
	if _, ok := r.applications[application.ID]; !ok {
		return errors.NotFound("Application", nil)
	}
	if _, ok := r.userRepo.users[user.ID]; !ok {
		return errors.NotFound("User", nil)
	}
	appCp := *application
	userCp := *user
	r.applications[application.ID] = &appCp
	r.userRepo.users[user.ID] = &userCp
	return nil
}

func (r *fakeApplicationRepo) DeleteCascade(ctx context.Context, applicationID, userID string, listingIDs []string) error {
	if _, ok := r.applications[applicationID]; !ok {
		return errors.NotFound("Application", nil)
	}
	if _, ok := r.userRepo.users[userID]; !ok {
		return errors.NotFound("User", nil)
	}
	delete(r.applications, applicationID)
	delete(r.userRepo.users, userID)
	for _, id := range listingIDs {
		delete(r.listingRepo.listings, id)
	}
	return nil
}

type fakePaymentRepo struct {
	payments    map[string]*entity.Payment
	listingRepo *fakeListingRepo
}

func newFakePaymentRepo(listingRepo *fakeListingRepo) *fakePaymentRepo {
	return &fakePaymentRepo{
		payments:    make(map[string]*entity.Payment),
		listingRepo: listingRepo,
	}
}

func (r *fakePaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	cp := *payment
	r.payments[payment.ID] = &cp
	return nil
}

func (r *fakePaymentRepo) GetByID(ctx context.Context, id string) (*entity.Payment, error) {
	p, ok := r.payments[id]
	if !ok {
		return nil, errors.NotFound("Payment", nil)
	}
	cp := *p
	return &cp, nil
}

func (r *fakePaymentRepo) GetByPropertyID(ctx context.Context, propertyID string) (*entity.Payment, error) {
	for _, p := range r.payments {
		if p.PropertyID == propertyID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, errors.NotFound("Payment", nil)
}

func (r *fakePaymentRepo) List(ctx context.Context, status entity.PaymentStatus, limit, offset int) ([]*entity.Payment, int64, error) {
	var out []*entity.Payment
	for _, p := range r.payments {
		if status == "" || p.Status == status {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakePaymentRepo) ListByPayerID(ctx context.Context, payerID string, limit, offset int) ([]*entity.Payment, int64, error) {
	var out []*entity.Payment
	for _, p := range r.payments {
		if p.PayerID == payerID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakePaymentRepo) Update(ctx context.Context, payment *entity.Payment) error {
	if _, ok := r.payments[payment.ID]; !ok {
		return errors.NotFound("Payment", nil)
	}
	cp := *payment
	r.payments[payment.ID] = &cp
	return nil
}

func (r *fakePaymentRepo) Delete(ctx context.Context, id string) error {
	delete(r.payments, id)
	return nil
}

// ApplyReview validates both transitions before touching either record,
// matching the all-or-nothing behavior of the real transaction.
func (r *fakePaymentRepo) ApplyReview(ctx context.Context, paymentID string, action entity.StatusAction) (*entity.Payment, error) {
	payment, ok := r.payments[paymentID]
	if !ok {
		return nil, errors.NotFound("Payment", nil)
	}

	nextPayment, err := payment.Status.Transition(action)
	if err != nil {
		return nil, err
	}

	listing, ok := r.listingRepo.listings[payment.PropertyID]
	if !ok {
		return nil, errors.NotFound("Linked listing", nil)
	}

	nextListing, err := listing.Status.Transition(action)
	if err != nil {
		return nil, err
	}

	payment.Status = nextPayment
	listing.Status = nextListing

	cp := *payment
	return &cp, nil
}

type fakeBannerRepo struct {
	banners map[string]*entity.Banner
}

func newFakeBannerRepo() *fakeBannerRepo {
	return &fakeBannerRepo{banners: make(map[string]*entity.Banner)}
}

func (r *fakeBannerRepo) Create(ctx context.Context, banner *entity.Banner) error {
	if banner.ID == "" {
		banner.ID = uuid.New().String()
	}
	cp := *banner
	r.banners[banner.ID] = &cp
	return nil
}

func (r *fakeBannerRepo) GetByID(ctx context.Context, id string) (*entity.Banner, error) {
	b, ok := r.banners[id]
	if !ok {
		return nil, errors.NotFound("Banner", nil)
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBannerRepo) List(ctx context.Context, onlyActive bool) ([]*entity.Banner, error) {
	var out []*entity.Banner
	for _, b := range r.banners {
		if onlyActive && !b.IsActive {
			continue
		}
		cp := *b
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeBannerRepo) Update(ctx context.Context, banner *entity.Banner) error {
	if _, ok := r.banners[banner.ID]; !ok {
		return errors.NotFound("Banner", nil)
	}
	cp := *banner
	r.banners[banner.ID] = &cp
	return nil
}

func (r *fakeBannerRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.banners[id]; !ok {
		return errors.NotFound("Banner", nil)
	}
	delete(r.banners, id)
	return nil
}

type fakeAuthClient struct {
	deletedUIDs []string
}

func (a *fakeAuthClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	return uuid.New().String(), nil
}

func (a *fakeAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	return token, nil
}

func (a *fakeAuthClient) UpdateUserPassword(ctx context.Context, uid, newPassword string) error {
	return nil
}

func (a *fakeAuthClient) DeleteUser(ctx context.Context, uid string) error {
	a.deletedUIDs = append(a.deletedUIDs, uid)
	return nil
}

func (a *fakeAuthClient) SignInWithEmailPassword(email, password string) (string, error) {
	return "id-token", nil
}

func (a *fakeAuthClient) RefreshIdToken(refreshToken string) (string, error) {
	return "id-token", nil
}

func (a *fakeAuthClient) TestConnection(ctx context.Context) error {
	return nil
}

var (
	_ repository.UserRepository        = (*fakeUserRepo)(nil)
	_ repository.ListingRepository     = (*fakeListingRepo)(nil)
	_ repository.SubmissionRepository  = (*fakeSubmissionRepo)(nil)
	_ repository.ApplicationRepository = (*fakeApplicationRepo)(nil)
	_ repository.PaymentRepository     = (*fakePaymentRepo)(nil)
	_ repository.BannerRepository      = (*fakeBannerRepo)(nil)
	_ AuthClient                       = (*fakeAuthClient)(nil)
)
