package service

import (
	"context"
	"database/sql"
	"io"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/artistdesk/artistdesk-api/internal/domain"
	"github.com/artistdesk/artistdesk-api/internal/repository/ports"
)

// In-memory repository fakes shared by the service tests.

type memUserRepo struct {
	nextID int64
	users  map[int64]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{nextID: 1, users: map[int64]*domain.User{}}
}

func (r *memUserRepo) Create(ctx context.Context, input ports.UserCreate) (int64, error) {
	for _, u := range r.users {
		if u.Username == input.Username || u.EmailAddress == input.EmailAddress {
			return 0, &pgconn.PgError{Code: "23505", ConstraintName: "user_account_username_key"}
		}
	}
	id := r.nextID
	r.nextID++
	now := time.Now()
	r.users[id] = &domain.User{
		ID:           id,
		Username:     input.Username,
		Password:     input.PasswordHash,
		TypeOfEntity: input.TypeOfEntity,
		Name:         input.Name,
		Surname:      input.Surname,
		EmailAddress: input.EmailAddress,
		PhoneNumber:  input.PhoneNumber,
		VatID:        input.VatID,
		BankAccount:  input.BankAccount,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return id, nil
}

func (r *memUserRepo) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, sql.ErrNoRows
}

func (r *memUserRepo) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r *memUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.EmailAddress == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r *memUserRepo) Update(ctx context.Context, id int64, input ports.UserUpdate) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	if input.Username != nil {
		u.Username = *input.Username
	}
	if input.TypeOfEntity != nil {
		u.TypeOfEntity = *input.TypeOfEntity
	}
	if input.Name != nil {
		u.Name = *input.Name
	}
	if input.Surname != nil {
		u.Surname = *input.Surname
	}
	if input.EmailAddress != nil {
		u.EmailAddress = *input.EmailAddress
	}
	if input.PhoneNumber != nil {
		u.PhoneNumber = *input.PhoneNumber
	}
	if input.VatID != nil {
		u.VatID = input.VatID
	}
	if input.BankAccount != nil {
		u.BankAccount = input.BankAccount
	}
	u.UpdatedAt = time.Now()
	copied := *u
	return &copied, nil
}

func (r *memUserRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) (bool, error) {
	u, ok := r.users[id]
	if !ok {
		return false, nil
	}
	u.Password = passwordHash
	u.UpdatedAt = time.Now()
	return true, nil
}

func (r *memUserRepo) Deactivate(ctx context.Context, id int64, at time.Time) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	u.IsActive = false
	u.DeactivationDate = &at
	u.UpdatedAt = time.Now()
	copied := *u
	return &copied, nil
}

type memResetRepo struct {
	nextID int64
	tokens map[int64]*domain.PasswordResetToken
}

func newMemResetRepo() *memResetRepo {
	return &memResetRepo{nextID: 1, tokens: map[int64]*domain.PasswordResetToken{}}
}

func (r *memResetRepo) Create(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) (*domain.PasswordResetToken, error) {
	id := r.nextID
	r.nextID++
	token := &domain.PasswordResetToken{
		ID:        id,
		UserID:    userID,
		TokenHash: tokenHash,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}
	r.tokens[id] = token
	copied := *token
	return &copied, nil
}

func (r *memResetRepo) ListUnexpired(ctx context.Context, now time.Time) ([]domain.PasswordResetToken, error) {
	var out []domain.PasswordResetToken
	for _, t := range r.tokens {
		if t.ExpiresAt.After(now) {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *memResetRepo) Delete(ctx context.Context, id int64) error {
	delete(r.tokens, id)
	return nil
}

type recordingMailer struct {
	emails []string
	tokens []string
	urls   []string
	err    error
}

func (m *recordingMailer) SendPasswordReset(ctx context.Context, email, token, resetURL string) error {
	m.emails = append(m.emails, email)
	m.tokens = append(m.tokens, token)
	m.urls = append(m.urls, resetURL)
	return m.err
}

type memProfileRepo struct {
	nextID   int64
	profiles map[int64]*domain.Profile
}

func newMemProfileRepo() *memProfileRepo {
	return &memProfileRepo{nextID: 1, profiles: map[int64]*domain.Profile{}}
}

func (r *memProfileRepo) Create(ctx context.Context, userID int64, input ports.ProfileCreate) (int64, error) {
	id := r.nextID
	r.nextID++
	now := time.Now()
	r.profiles[id] = &domain.Profile{
		ID:              id,
		UserID:          userID,
		Name:            input.Name,
		PerformanceType: input.PerformanceType,
		Description:     input.Description,
		Bio:             input.Bio,
		Website:         input.Website,
		SocialMedia:     input.SocialMedia,
		StagePlan:       input.StagePlan,
		TechRider:       input.TechRider,
		Photos:          input.Photos,
		Videos:          input.Videos,
		Audios:          input.Audios,
		OnlinePress:     input.OnlinePress,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	return id, nil
}

func (r *memProfileRepo) FindByID(ctx context.Context, id int64) (*domain.Profile, error) {
	if p, ok := r.profiles[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, sql.ErrNoRows
}

func (r *memProfileRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Profile, error) {
	var out []domain.Profile
	for _, p := range r.profiles {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *memProfileRepo) Update(ctx context.Context, id int64, input ports.ProfileUpdate) (*domain.Profile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	if input.Name != nil {
		p.Name = *input.Name
	}
	if input.PerformanceType != nil {
		p.PerformanceType = *input.PerformanceType
	}
	if input.Description != nil {
		p.Description = input.Description
	}
	if input.Bio != nil {
		p.Bio = input.Bio
	}
	if input.Website != nil {
		p.Website = input.Website
	}
	if input.SocialMedia != nil {
		p.SocialMedia = input.SocialMedia
	}
	if input.Photos != nil {
		p.Photos = input.Photos
	}
	if input.Videos != nil {
		p.Videos = input.Videos
	}
	if input.Audios != nil {
		p.Audios = input.Audios
	}
	if input.OnlinePress != nil {
		p.OnlinePress = input.OnlinePress
	}
	p.UpdatedAt = time.Now()
	copied := *p
	return &copied, nil
}

func (r *memProfileRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.profiles[id]; !ok {
		return sql.ErrNoRows
	}
	delete(r.profiles, id)
	return nil
}

type memContractRepo struct {
	nextID    int64
	contracts map[int64]*domain.Contract
	events    map[int64][]domain.EventRef
}

func newMemContractRepo() *memContractRepo {
	return &memContractRepo{
		nextID:    1,
		contracts: map[int64]*domain.Contract{},
		events:    map[int64][]domain.EventRef{},
	}
}

func (r *memContractRepo) Create(ctx context.Context, offerorID int64, input ports.ContractCreate) (int64, error) {
	id := r.nextID
	r.nextID++
	now := time.Now()
	r.contracts[id] = &domain.Contract{
		ID:                    id,
		Name:                  input.Name,
		OfferorID:             offerorID,
		OffereeID:             input.OffereeID,
		CurrencyCode:          input.CurrencyCode,
		UponSigning:           input.UponSigning,
		UponCompletion:        input.UponCompletion,
		PaymentMethod:         input.PaymentMethod,
		PerformanceFee:        input.PerformanceFee,
		TravelExpenses:        input.TravelExpenses,
		AccommodationExpenses: input.AccommodationExpenses,
		OtherExpenses:         input.OtherExpenses,
		TotalFee:              input.TotalFee,
		SignedAt:              input.SignedAt,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	return id, nil
}

func (r *memContractRepo) FindByID(ctx context.Context, id int64) (*domain.Contract, error) {
	if c, ok := r.contracts[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, sql.ErrNoRows
}

func (r *memContractRepo) ListByUser(ctx context.Context, userID int64) ([]domain.ContractRef, error) {
	var out []domain.ContractRef
	for _, c := range r.contracts {
		if c.IsParty(userID) {
			out = append(out, domain.ContractRef{ID: c.ID, Name: c.Name})
		}
	}
	return out, nil
}

func (r *memContractRepo) Update(ctx context.Context, id int64, input ports.ContractUpdate) (*domain.Contract, error) {
	c, ok := r.contracts[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	if input.Name != nil {
		c.Name = *input.Name
	}
	if input.CurrencyCode != nil {
		c.CurrencyCode = *input.CurrencyCode
	}
	if input.PaymentMethod != nil {
		c.PaymentMethod = *input.PaymentMethod
	}
	if input.PerformanceFee != nil {
		c.PerformanceFee = *input.PerformanceFee
	}
	if input.TotalFee != nil {
		c.TotalFee = *input.TotalFee
	}
	if input.SignedAt != nil {
		c.SignedAt = input.SignedAt
	}
	c.UpdatedAt = time.Now()
	copied := *c
	return &copied, nil
}

func (r *memContractRepo) Disable(ctx context.Context, id int64, at time.Time) error {
	c, ok := r.contracts[id]
	if !ok {
		return sql.ErrNoRows
	}
	c.Disabled = true
	c.DisabledAt = &at
	return nil
}

func (r *memContractRepo) ListEvents(ctx context.Context, contractID int64) ([]domain.EventRef, error) {
	return append([]domain.EventRef(nil), r.events[contractID]...), nil
}

type memEventRepo struct {
	nextID int64
	items  map[int64]*domain.Event
}

func newMemEventRepo() *memEventRepo {
	return &memEventRepo{nextID: 1, items: map[int64]*domain.Event{}}
}

func (r *memEventRepo) Create(ctx context.Context, input ports.EventCreate) (int64, error) {
	id := r.nextID
	r.nextID++
	now := time.Now()
	r.items[id] = &domain.Event{
		ID:               id,
		Name:             input.Name,
		ContractID:       input.ContractID,
		ProfileOfferorID: input.ProfileOfferorID,
		ProfileOffereeID: input.ProfileOffereeID,
		Date:             input.Date,
		DurationMinutes:  input.DurationMinutes,
		Start:            input.Start,
		Arrive:           input.Arrive,
		StageSet:         input.StageSet,
		StageCheck:       input.StageCheck,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	return id, nil
}

func (r *memEventRepo) FindByID(ctx context.Context, id int64) (*domain.Event, error) {
	if e, ok := r.items[id]; ok {
		copied := *e
		return &copied, nil
	}
	return nil, sql.ErrNoRows
}

func (r *memEventRepo) Update(ctx context.Context, id int64, input ports.EventUpdate) (*domain.Event, error) {
	e, ok := r.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	if input.Name != nil {
		e.Name = *input.Name
	}
	if input.Date != nil {
		e.Date = *input.Date
	}
	if input.Start != nil {
		e.Start = *input.Start
	}
	e.UpdatedAt = time.Now()
	copied := *e
	return &copied, nil
}

func (r *memEventRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.items[id]; !ok {
		return sql.ErrNoRows
	}
	delete(r.items, id)
	return nil
}

type memAccommodationRepo struct {
	nextID int64
	items  map[int64]*domain.Accommodation
}

func newMemAccommodationRepo() *memAccommodationRepo {
	return &memAccommodationRepo{nextID: 1, items: map[int64]*domain.Accommodation{}}
}

func (r *memAccommodationRepo) Create(ctx context.Context, userID int64, input ports.AccommodationCreate) (int64, error) {
	id := r.nextID
	r.nextID++
	now := time.Now()
	r.items[id] = &domain.Accommodation{
		ID:              id,
		UserID:          userID,
		Name:            input.Name,
		ContactPerson:   input.ContactPerson,
		Address:         input.Address,
		TelephoneNumber: input.TelephoneNumber,
		Email:           input.Email,
		Website:         input.Website,
		URL:             input.URL,
		CheckIn:         input.CheckIn,
		CheckOut:        input.CheckOut,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	return id, nil
}

func (r *memAccommodationRepo) FindByID(ctx context.Context, id int64) (*domain.Accommodation, error) {
	if a, ok := r.items[id]; ok {
		copied := *a
		return &copied, nil
	}
	return nil, sql.ErrNoRows
}

func (r *memAccommodationRepo) Update(ctx context.Context, id int64, input ports.AccommodationUpdate) (*domain.Accommodation, error) {
	a, ok := r.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	if input.Name != nil {
		a.Name = *input.Name
	}
	if input.Address != nil {
		a.Address = *input.Address
	}
	if input.CheckIn != nil {
		a.CheckIn = *input.CheckIn
	}
	if input.CheckOut != nil {
		a.CheckOut = *input.CheckOut
	}
	a.UpdatedAt = time.Now()
	copied := *a
	return &copied, nil
}

func (r *memAccommodationRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.items[id]; !ok {
		return sql.ErrNoRows
	}
	delete(r.items, id)
	return nil
}

type memObjectStorage struct {
	objects map[string][]byte
	putErr  error
}

func newMemObjectStorage() *memObjectStorage {
	return &memObjectStorage{objects: map[string][]byte{}}
}

func (s *memObjectStorage) Put(ctx context.Context, bucket, objectName string, reader io.Reader, size int64, contentType string) error {
	if s.putErr != nil {
		return s.putErr
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.objects[bucket+"/"+objectName] = data
	return nil
}

func (s *memObjectStorage) PublicURL(bucket, objectName string) string {
	return "https://media.example.com/" + bucket + "/" + objectName
}
