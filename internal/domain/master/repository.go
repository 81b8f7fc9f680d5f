package master

import "context"

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
}

type DosenRepository interface {
	GetByID(ctx context.Context, id string) (*Dosen, error)
	GetByUserID(ctx context.Context, userID string) (*Dosen, error)
}

type MahasiswaRepository interface {
	GetByID(ctx context.Context, id string) (*Mahasiswa, error)
}

type ReviewerRepository interface {
	GetByID(ctx context.Context, id string) (*Reviewer, error)
	GetByUserID(ctx context.Context, userID string) (*Reviewer, error)
	GetByIDs(ctx context.Context, ids []string) ([]Reviewer, error)
}

type PeriodeRepository interface {
	GetByID(ctx context.Context, id string) (*Periode, error)
}
