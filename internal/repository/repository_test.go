package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	. "github.com/smartystreets/goconvey/convey"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"medal_stats/internal/storage"
)

func newMockDB(t *testing.T, queryTimeout time.Duration) (*storage.PostgresDB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{Logger: gormlogger.Discard})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })
	return storage.Wrap(gdb, queryTimeout), mock
}

var tallyCols = []string{"codigo", "nome", "ouro", "prata", "bronze"}

func TestMedalRepository(t *testing.T) {
	Convey("Given a medal repository over a mocked postgres", t, func() {
		db, mock := newMockDB(t, time.Second)
		repo := NewRepositories(db).Medal
		ctx := context.Background()

		Convey("Tally aggregates every NOC in ranking order", func() {
			mock.ExpectQuery(`FROM noc\s+JOIN atleta ON noc\.codigo = atleta\.noc\s+JOIN medalha ON atleta\.id = medalha\.atleta\s+GROUP BY noc\.codigo, noc\.nome\s+ORDER BY ouro DESC, prata DESC, bronze DESC, noc\.codigo ASC`).
				WillReturnRows(sqlmock.NewRows(tallyCols).
					AddRow("USA", "United States", 5, 3, 2).
					AddRow("BRA", "Brazil", 1, 0, 4))

			rows, err := repo.Tally(ctx)

			So(err, ShouldBeNil)
			So(len(rows), ShouldEqual, 2)
			So(rows[0].Codigo, ShouldEqual, "USA")
			So(rows[0].Nome, ShouldEqual, "United States")
			So(rows[0].Ouro, ShouldEqual, int64(5))
			So(rows[1].Bronze, ShouldEqual, int64(4))
			So(mock.ExpectationsWereMet(), ShouldBeNil)
		})

		Convey("TallyByCountry binds the NOC code", func() {
			mock.ExpectQuery(`WHERE noc\.codigo = \$1`).
				WithArgs("USA").
				WillReturnRows(sqlmock.NewRows(tallyCols).AddRow("USA", "United States", 5, 3, 2))

			rows, err := repo.TallyByCountry(ctx, "USA")

			So(err, ShouldBeNil)
			So(len(rows), ShouldEqual, 1)
			So(rows[0].Total(), ShouldEqual, int64(10))
			So(mock.ExpectationsWereMet(), ShouldBeNil)
		})

		Convey("TallyByCountry returns an empty slice when nothing matches", func() {
			mock.ExpectQuery(`WHERE noc\.codigo = \$1`).
				WithArgs("XYZ").
				WillReturnRows(sqlmock.NewRows(tallyCols))

			rows, err := repo.TallyByCountry(ctx, "XYZ")

			So(err, ShouldBeNil)
			So(rows, ShouldNotBeNil)
			So(len(rows), ShouldEqual, 0)
		})

		Convey("Top counts athletes per NOC and binds the limit", func() {
			mock.ExpectQuery(`(?s)\(SELECT COUNT\(\*\) FROM atleta a WHERE a\.noc = noc\.codigo\) AS total_atletas.*LIMIT \$1`).
				WithArgs(2).
				WillReturnRows(sqlmock.NewRows(append(tallyCols, "total_atletas")).
					AddRow("USA", "United States", 5, 3, 2, 40).
					AddRow("BRA", "Brazil", 1, 0, 4, 25))

			rows, err := repo.Top(ctx, 2)

			So(err, ShouldBeNil)
			So(len(rows), ShouldEqual, 2)
			So(rows[0].Codigo, ShouldEqual, "USA")
			So(rows[0].TotalAtletas, ShouldEqual, int64(40))
			So(rows[1].TotalAtletas, ShouldEqual, int64(25))
			So(mock.ExpectationsWereMet(), ShouldBeNil)
		})

		Convey("TallyAboveTotal filters on the bound minimum", func() {
			mock.ExpectQuery(`HAVING SUM\(CASE WHEN medalha\.tipo IN \('O', 'P', 'B'\) THEN 1 ELSE 0 END\) > \$1`).
				WithArgs(10).
				WillReturnRows(sqlmock.NewRows(tallyCols).AddRow("CHN", "China", 8, 2, 2))

			rows, err := repo.TallyAboveTotal(ctx, 10)

			So(err, ShouldBeNil)
			So(len(rows), ShouldEqual, 1)
			So(rows[0].Codigo, ShouldEqual, "CHN")
			So(mock.ExpectationsWereMet(), ShouldBeNil)
		})

		Convey("TallyBySport joins medal to event to sport", func() {
			mock.ExpectQuery(`JOIN evento ON medalha\.evento = evento\.id\s+JOIN esporte ON evento\.esporte = esporte\.id\s+WHERE CAST\(esporte\.id AS TEXT\) = \$1`).
				WithArgs("7").
				WillReturnRows(sqlmock.NewRows(tallyCols).AddRow("KEN", "Kenya", 2, 1, 0))

			rows, err := repo.TallyBySport(ctx, "7")

			So(err, ShouldBeNil)
			So(len(rows), ShouldEqual, 1)
			So(rows[0].Nome, ShouldEqual, "Kenya")
			So(mock.ExpectationsWereMet(), ShouldBeNil)
		})

		Convey("Query errors are wrapped", func() {
			mock.ExpectQuery(`FROM noc`).WillReturnError(context.DeadlineExceeded)

			_, err := repo.Tally(ctx)

			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "query failed")
		})
	})
}

func TestQueryTimeout(t *testing.T) {
	Convey("Given a repository with a very short query timeout", t, func() {
		db, mock := newMockDB(t, 10*time.Millisecond)
		repo := NewSportRepository(db)

		mock.ExpectQuery(`FROM esporte`).
			WillDelayFor(200 * time.Millisecond).
			WillReturnRows(sqlmock.NewRows([]string{"id", "nome"}).AddRow(1, "Athletics"))

		Convey("Then a slow query is cancelled instead of blocking", func() {
			_, err := repo.FindAll(context.Background())
			So(err, ShouldNotBeNil)
		})
	})
}

func TestAthleteRepository(t *testing.T) {
	Convey("Given an athlete repository over a mocked postgres", t, func() {
		db, mock := newMockDB(t, time.Second)
		repo := NewAthleteRepository(db)
		cols := []string{"id", "nome", "genero", "idade", "noc", "total_athletes"}

		Convey("FindByNOC binds the code instead of interpolating it", func() {
			mock.ExpectQuery(`FROM atleta\s+WHERE atleta\.noc = \$1`).
				WithArgs(`A"B`).
				WillReturnRows(sqlmock.NewRows(cols))

			rows, err := repo.FindByNOC(context.Background(), `A"B`)

			So(err, ShouldBeNil)
			So(len(rows), ShouldEqual, 0)
			So(mock.ExpectationsWereMet(), ShouldBeNil)
		})

		Convey("FindByNOC repeats the total on every row and keeps null ages", func() {
			mock.ExpectQuery(`COUNT\(\*\) OVER \(\) AS total_athletes`).
				WithArgs("BRA").
				WillReturnRows(sqlmock.NewRows(cols).
					AddRow(1, "Rebeca Andrade", "F", 25, "BRA", 2).
					AddRow(2, "Isaquias Queiroz", "M", nil, "BRA", 2))

			rows, err := repo.FindByNOC(context.Background(), "BRA")

			So(err, ShouldBeNil)
			So(len(rows), ShouldEqual, 2)
			So(rows[0].Nome, ShouldEqual, "Rebeca Andrade")
			So(*rows[0].Idade, ShouldEqual, int64(25))
			So(rows[1].Idade, ShouldBeNil)
			So(rows[0].TotalAthletes, ShouldEqual, int64(2))
			So(rows[1].TotalAthletes, ShouldEqual, int64(2))
		})
	})
}

func TestSportRepository(t *testing.T) {
	Convey("Given a sport repository over a mocked postgres", t, func() {
		db, mock := newMockDB(t, time.Second)
		repo := NewSportRepository(db)

		mock.ExpectQuery(`SELECT esporte\.id AS id, esporte\.nome AS nome FROM esporte`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "nome"}).
				AddRow(3, "Swimming").
				AddRow(1, "Athletics"))

		Convey("FindAll returns rows in store order", func() {
			sports, err := repo.FindAll(context.Background())

			So(err, ShouldBeNil)
			So(len(sports), ShouldEqual, 2)
			So(sports[0].ID, ShouldEqual, int64(3))
			So(sports[0].Nome, ShouldEqual, "Swimming")
			So(sports[1].Nome, ShouldEqual, "Athletics")
		})
	})
}
