package repositories

import "gorm.io/gorm"

type Repos struct {
	db *gorm.DB

	User         UserRepo
	Profile      ProfileRepo
	Project      ProjectRepo
	Response     ResponseRepo
	Favorite     FavoriteRepo
	Message      MessageRepo
	Notification NotificationRepo
	Ticket       TicketRepo
	Review       ReviewRepo
	Admin        AdminRepo
}

func New(gdb *gorm.DB) *Repos {
	return bind(gdb)
}

func bind(gdb *gorm.DB) *Repos {
	return &Repos{
		db:           gdb,
		User:         &DBUserRepo{db: gdb},
		Profile:      &DBProfileRepo{db: gdb},
		Project:      &DBProjectRepo{db: gdb},
		Response:     &DBResponseRepo{db: gdb},
		Favorite:     &DBFavoriteRepo{db: gdb},
		Message:      &DBMessageRepo{db: gdb},
		Notification: &DBNotificationRepo{db: gdb},
		Ticket:       &DBTicketRepo{db: gdb},
		Review:       &DBReviewRepo{db: gdb},
		Admin:        &DBAdminRepo{db: gdb},
	}
}

// Atomic runs fn against a container bound to a single transaction. Every
// write inside fn commits or rolls back as one unit. A container without a
// database (mock-backed tests) runs fn directly.
func (r *Repos) Atomic(fn func(tx *Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(bind(tx))
	})
}
