package postgres

import (
	"database/sql"

	"betak-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.PropertyRepository
	repository.RentalRepository
	repository.RentalSettingRepository
	repository.AmenityRepository
	repository.TransactionRepository
	repository.ContactRepository
	repository.EvidenceFileIndex
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                      db,
		UserRepository:          NewUserRepository(db),
		PropertyRepository:      NewPropertyRepository(db),
		RentalRepository:        NewRentalRepository(db),
		RentalSettingRepository: NewRentalSettingRepository(db),
		AmenityRepository:       NewAmenityRepository(db),
		TransactionRepository:   NewTransactionRepository(db),
		ContactRepository:       NewContactRepository(db),
		EvidenceFileIndex:       NewEvidenceFileIndex(db),
	}
}
