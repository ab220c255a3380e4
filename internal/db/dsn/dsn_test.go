package dsn

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/linkshelf/linkshelf/internal/config"
)

func TestCreate(t *testing.T) {
	tests := []struct {
		name string
		db   config.DB
		want string
	}{
		{
			name: "sqlite path",
			db:   config.DB{GormEngine: config.EngineSQLite, Path: "/var/lib/linkshelf.db"},
			want: "/var/lib/linkshelf.db",
		},
		{
			name: "mysql adds parseTime",
			db: config.DB{
				GormEngine: config.EngineMySQL,
				User:       "shelf",
				Password:   "pw",
				Host:       "db",
				Port:       3306,
				Name:       "links",
				Extras:     "charset=utf8mb4",
			},
			want: "shelf:pw@tcp(db:3306)/links?charset=utf8mb4&parseTime=true",
		},
		{
			name: "mysql keeps explicit parseTime",
			db: config.DB{
				GormEngine: config.EngineMySQL,
				User:       "shelf",
				Password:   "pw",
				Host:       "db",
				Port:       3306,
				Name:       "links",
				Extras:     "parseTime=true",
			},
			want: "shelf:pw@tcp(db:3306)/links?parseTime=true",
		},
		{
			name: "mysql without extras",
			db: config.DB{
				GormEngine: config.EngineMySQL,
				User:       "shelf",
				Password:   "pw",
				Host:       "db",
				Port:       3306,
				Name:       "links",
			},
			want: "shelf:pw@tcp(db:3306)/links?parseTime=true",
		},
		{
			name: "postgres uri",
			db: config.DB{
				GormEngine: config.EnginePostgres,
				User:       "shelf",
				Password:   "pw",
				Host:       "db",
				Port:       5432,
				Name:       "links",
				Extras:     "sslmode=disable",
			},
			want: "postgres://shelf:pw@db:5432/links?sslmode=disable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Create(&config.Config{DB: tt.db}))
		})
	}
}
