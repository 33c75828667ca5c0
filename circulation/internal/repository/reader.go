package repository

import (
	"context"

	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
)

var readerColumns = []string{"id", "username", "email", "password_hash", "role", "created_at"}

func (r *repository) GetReader(ctx context.Context, id int64) (model.Reader, error) {
	rows, err := query(ctx, r.db, qb.Select(readerColumns...).
		From(readersTableName).
		Where(sq.Eq{"id": id}))
	return collectOne[model.Reader](rows, err)
}

func (r *repository) GetReaderByUsername(ctx context.Context, username string) (model.Reader, error) {
	rows, err := query(ctx, r.db, qb.Select(readerColumns...).
		From(readersTableName).
		Where(sq.Eq{"username": username}))
	return collectOne[model.Reader](rows, err)
}

func (r *repository) ListReaders(ctx context.Context) ([]model.ReaderWithProfile, error) {
	const q = `
select u.id, u.username, u.email, u.role, u.created_at,
       coalesce(p.full_name, ''), coalesce(p.contact, ''), coalesce(p.reference_id, ''), coalesce(p.address, '')
from readers u
         left join reader_profiles p on p.reader_id = u.id
order by u.id`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "list readers")
	}
	defer rows.Close()

	var readers []model.ReaderWithProfile
	for rows.Next() {
		var rp model.ReaderWithProfile
		if err = rows.Scan(&rp.ID, &rp.Username, &rp.Email, &rp.Role, &rp.CreatedAt,
			&rp.Profile.FullName, &rp.Profile.Contact, &rp.Profile.ReferenceID, &rp.Profile.Address); err != nil {
			return nil, err
		}
		rp.Profile.ReaderID = rp.ID
		readers = append(readers, rp)
	}
	return readers, rows.Err()
}

func (r *repository) GetProfile(ctx context.Context, readerID int64) (model.Profile, error) {
	rows, err := query(ctx, r.db, qb.Select("reader_id", "full_name", "contact", "reference_id", "address").
		From(profilesTableName).
		Where(sq.Eq{"reader_id": readerID}))
	return collectOne[model.Profile](rows, err)
}

func (r *repository) UpdateProfile(ctx context.Context, p model.Profile) (model.Profile, error) {
	rows, err := query(ctx, r.db, qb.Update(profilesTableName).
		Set("full_name", p.FullName).
		Set("contact", p.Contact).
		Set("reference_id", p.ReferenceID).
		Set("address", p.Address).
		Where(sq.Eq{"reader_id": p.ReaderID}).
		Suffix("RETURNING reader_id, full_name, contact, reference_id, address"))
	return collectOne[model.Profile](rows, err)
}
