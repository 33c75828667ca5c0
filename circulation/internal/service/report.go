package service

import (
	"context"

	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/pkg/auth"
	"golang.org/x/sync/errgroup"
)

func (s *Service) Report(ctx context.Context, p auth.Principal, top int) (model.Report, error) {
	if err := checkStaff(p); err != nil {
		return model.Report{}, err
	}
	if top <= 0 {
		top = defaultTopN
	}
	if top > maxTopN {
		top = maxTopN
	}

	var rep model.Report
	now := s.now()
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		rep.TotalBooks, rep.AvailableBooks, err = s.repo.CountBooks(gctx)
		return err
	})
	g.Go(func() (err error) {
		rep.ActiveBorrows, rep.OverdueBorrows, rep.DistinctBorrowers, err = s.repo.CountBorrows(gctx, now)
		return err
	})
	g.Go(func() (err error) {
		rep.TopBooks, err = s.repo.TopBooks(gctx, top)
		return err
	})
	g.Go(func() (err error) {
		rep.TopReaders, err = s.repo.TopReaders(gctx, top)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.Report{}, err
	}
	if rep.TopBooks == nil {
		rep.TopBooks = []model.BookStat{}
	}
	if rep.TopReaders == nil {
		rep.TopReaders = []model.ReaderStat{}
	}
	return rep, nil
}
