package service

import (
	"context"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/circulation/internal/repository"
	"github.com/Astemirdum/library-circulation/pkg/auth"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a reader and its profile in one transaction.
func (s *Service) Register(ctx context.Context, req model.RegisterRequest, role auth.Role) (model.Reader, error) {
	if !role.Valid() {
		return model.Reader{}, errs.ErrForbidden
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.Reader{}, errors.Wrap(err, "hash password")
	}

	var reader model.Reader
	err = s.runTx(ctx, func(ctx context.Context, tx repository.Tx) error {
		r, err := tx.CreateReader(ctx, model.Reader{
			Username:     req.Username,
			Email:        req.Email,
			PasswordHash: string(hash),
			Role:         role,
			CreatedAt:    s.now(),
		})
		if err != nil {
			return err
		}
		if err = tx.CreateProfile(ctx, model.Profile{
			ReaderID: r.ID,
			FullName: req.FullName,
			Contact:  req.Contact,
			Address:  req.Address,
		}); err != nil {
			return err
		}
		reader = r
		return nil
	})
	if err != nil {
		return model.Reader{}, err
	}
	s.log.Info("reader registered", zap.Int64("reader_id", reader.ID), zap.String("role", string(role)))
	return reader, nil
}

func (s *Service) Authenticate(ctx context.Context, creds model.Credentials) (model.Reader, error) {
	reader, err := s.repo.GetReaderByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Reader{}, errs.ErrInvalidCredentials
		}
		return model.Reader{}, err
	}
	if err = bcrypt.CompareHashAndPassword([]byte(reader.PasswordHash), []byte(creds.Password)); err != nil {
		return model.Reader{}, errs.ErrInvalidCredentials
	}
	return reader, nil
}

func (s *Service) ListReaders(ctx context.Context, p auth.Principal) ([]model.ReaderWithProfile, error) {
	if err := checkStaff(p); err != nil {
		return nil, err
	}
	return s.repo.ListReaders(ctx)
}

func (s *Service) GetProfile(ctx context.Context, p auth.Principal, readerID int64) (model.Profile, error) {
	if err := checkPrincipal(p); err != nil {
		return model.Profile{}, err
	}
	if !p.CanActFor(readerID) {
		return model.Profile{}, errs.ErrForbidden
	}
	return s.repo.GetProfile(ctx, readerID)
}

func (s *Service) UpdateProfile(ctx context.Context, p auth.Principal, profile model.Profile) (model.Profile, error) {
	if err := checkPrincipal(p); err != nil {
		return model.Profile{}, err
	}
	if !p.CanActFor(profile.ReaderID) {
		return model.Profile{}, errs.ErrForbidden
	}
	return s.repo.UpdateProfile(ctx, profile)
}
