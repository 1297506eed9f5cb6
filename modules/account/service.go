package account

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/authenticator/pkg/logger"
	"github.com/dmitrymomot/authenticator/pkg/qrcode"
	"github.com/dmitrymomot/authenticator/pkg/secrets"
	"github.com/dmitrymomot/authenticator/pkg/totp"
)

// Repository persists account records. Implementations return ErrNotFound
// when FindByID or Delete match nothing for the user and id pair.
type Repository interface {
	Insert(ctx context.Context, rec Record) error
	FindByUser(ctx context.Context, userID string) ([]Record, error)
	FindByID(ctx context.Context, userID, id string) (Record, error)
	Delete(ctx context.Context, userID, id string) error
}

// Cipher encrypts secrets at rest. *secrets.Cipher satisfies it.
type Cipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(envelope string) (string, error)
}

// Code pairs an account with the code computed for it.
type Code struct {
	Account Account
	totp.CodeResult
}

type Service struct {
	repo   Repository
	cipher Cipher
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
}

func NewService(repo Repository, cipher Cipher, opts ...Option) *Service {
	s := &Service{
		repo:   repo,
		cipher: cipher,
		logger: logger.Nop(),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates in, encrypts the secret and stores a new account for userID.
// Nothing is persisted when validation or encryption fails.
func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (Account, error) {
	if userID == "" {
		return Account{}, ErrMissingUserID
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Account{}, ErrMissingName
	}
	issuer := strings.TrimSpace(in.Issuer)
	if issuer == "" {
		return Account{}, ErrMissingIssuer
	}

	period := in.Period
	if period == 0 {
		period = totp.DefaultPeriod
	}
	if period < totp.MinPeriod || period > totp.MaxPeriod {
		return Account{}, ErrInvalidPeriod
	}

	secret := totp.NormalizeSecret(in.Secret)
	if _, err := totp.GenerateCode(secret, period); err != nil {
		return Account{}, errors.Join(ErrInvalidSecret, err)
	}

	envelope, err := s.cipher.Encrypt(secret)
	if err != nil {
		return Account{}, err
	}
	if envelope == "" {
		return Account{}, errors.Join(secrets.ErrEncryption, ErrEmptyEnvelope)
	}

	rec := Record{
		ID:        s.newID(),
		UserID:    userID,
		Name:      name,
		Issuer:    issuer,
		Secret:    envelope,
		Tags:      cleanTags(in.Tags),
		Period:    period,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Insert(ctx, rec); err != nil {
		return Account{}, err
	}

	return rec.account(secret), nil
}

// List returns the user's accounts with their secrets decrypted.
// Records whose envelope cannot be decrypted are logged by id and left out.
func (s *Service) List(ctx context.Context, userID string) ([]Account, error) {
	if userID == "" {
		return nil, ErrMissingUserID
	}

	records, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	accounts := make([]Account, 0, len(records))
	for _, rec := range records {
		acc, err := s.decrypt(rec)
		if errors.Is(err, secrets.ErrDecryption) {
			s.logger.WarnContext(ctx, "skipping account with undecryptable secret",
				logger.UserID(userID),
				logger.AccountID(rec.ID),
			)
			continue
		}
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, acc)
	}
	return accounts, nil
}

// Get returns one account with its secret decrypted.
func (s *Service) Get(ctx context.Context, userID, id string) (Account, error) {
	if userID == "" {
		return Account{}, ErrMissingUserID
	}
	if id == "" {
		return Account{}, ErrMissingID
	}

	rec, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return Account{}, err
	}
	return s.decrypt(rec)
}

// Delete removes the account id owned by userID.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if userID == "" {
		return ErrMissingUserID
	}
	if id == "" {
		return ErrMissingID
	}
	return s.repo.Delete(ctx, userID, id)
}

// Codes lists the user's accounts and computes every code against the single instant now.
func (s *Service) Codes(ctx context.Context, userID string, now time.Time) ([]Code, error) {
	accounts, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	inputs := make([]totp.Account, len(accounts))
	for i, acc := range accounts {
		inputs[i] = totp.Account{ID: acc.ID, Secret: acc.Secret, Period: acc.Period}
	}
	results := totp.GenerateCodes(inputs, now)

	codes := make([]Code, len(accounts))
	for i, acc := range accounts {
		codes[i] = Code{Account: acc, CodeResult: results[acc.ID]}
	}
	s.logger.DebugContext(ctx, "generated codes", logger.UserID(userID), logger.Count(len(codes)))
	return codes, nil
}

// ExportURI returns the otpauth:// URI for importing the account into another app.
func (s *Service) ExportURI(ctx context.Context, userID, id string) (string, error) {
	acc, err := s.Get(ctx, userID, id)
	if err != nil {
		return "", err
	}
	return totp.GetTOTPURI(totp.TOTPParams{
		Secret:      acc.Secret,
		AccountName: acc.Name,
		Issuer:      acc.Issuer,
		Period:      acc.Period,
	})
}

// ExportQR renders the account's otpauth:// URI as a base64 PNG data URI.
func (s *Service) ExportQR(ctx context.Context, userID, id string, size int) (string, error) {
	uri, err := s.ExportURI(ctx, userID, id)
	if err != nil {
		return "", err
	}
	return qrcode.GenerateBase64Image(uri, size)
}

func (s *Service) decrypt(rec Record) (Account, error) {
	secret, err := s.cipher.Decrypt(rec.Secret)
	if err != nil {
		return Account{}, err
	}
	acc := rec.account(secret)
	acc.Period = totp.NormalizePeriod(acc.Period)
	return acc, nil
}
