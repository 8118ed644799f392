package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	Convey("Given the bundled config.yaml", t, func() {
		cfg, err := Load()

		Convey("Then it is decoded with durations and lists", func() {
			So(err, ShouldBeNil)
			So(cfg.Server.Address, ShouldEqual, ":5000")
			So(cfg.DB.Name, ShouldEqual, "olimpiadas")
			So(cfg.DB.TimeZone, ShouldEqual, "America/Sao_Paulo")
			So(cfg.DB.QueryTimeout, ShouldEqual, 5*time.Second)
			So(cfg.DB.ConnMaxLifetime, ShouldEqual, 30*time.Minute)
			So(cfg.CORS.AllowedOrigins, ShouldResemble, []string{"*"})
		})
	})
}

func TestLoadFile(t *testing.T) {
	Convey("Given a partial config file", t, func() {
		path := writeConfig(t, "db:\n  host: pg.local\n  name: jogos\n")

		Convey("When it is loaded", func() {
			cfg, err := LoadFile(path)

			Convey("Then missing keys fall back to defaults", func() {
				So(err, ShouldBeNil)
				So(cfg.DB.Host, ShouldEqual, "pg.local")
				So(cfg.DB.Name, ShouldEqual, "jogos")
				So(cfg.DB.Port, ShouldEqual, 5432)
				So(cfg.DB.QueryTimeout, ShouldEqual, 5*time.Second)
				So(cfg.Log.Level, ShouldEqual, "info")
				So(cfg.Server.ShutdownTimeout, ShouldEqual, 10*time.Second)
			})
		})
	})

	Convey("Given a config file that does not exist", t, func() {
		_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))

		Convey("Then loading fails", func() {
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Given a config with an invalid query timeout", t, func() {
		path := writeConfig(t, "db:\n  query_timeout: 0s\n")
		_, err := LoadFile(path)

		Convey("Then validation rejects it", func() {
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "query_timeout")
		})
	})
}

func TestLoadFileEnvOverride(t *testing.T) {
	t.Setenv("MEDALS_DB_HOST", "db.internal")
	t.Setenv("MEDALS_SERVER_ADDRESS", ":9090")
	t.Setenv("MEDALS_DB_QUERY_TIMEOUT", "250ms")

	Convey("Given environment variables and a config file", t, func() {
		path := writeConfig(t, "db:\n  host: pg.local\n  name: jogos\n")
		cfg, err := LoadFile(path)

		Convey("Then the environment overrides the file", func() {
			So(err, ShouldBeNil)
			So(cfg.DB.Host, ShouldEqual, "db.internal")
			So(cfg.DB.Name, ShouldEqual, "jogos")
			So(cfg.Server.Address, ShouldEqual, ":9090")
			So(cfg.DB.QueryTimeout, ShouldEqual, 250*time.Millisecond)
		})
	})
}

func TestLoadFileRejectsUnknownMode(t *testing.T) {
	t.Setenv("MEDALS_SERVER_MODE", "prod")

	Convey("Given a server mode gin does not know", t, func() {
		path := writeConfig(t, "db:\n  host: pg.local\n")
		_, err := LoadFile(path)

		Convey("Then loading fails instead of panicking later", func() {
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "server.mode")
		})
	})
}

func TestValidate(t *testing.T) {
	Convey("Given a config without a database host", t, func() {
		cfg := &Config{Server: ServerConfig{Mode: "release"}, DB: DBConfig{Name: "x", Port: 5432, QueryTimeout: time.Second}}

		Convey("Then Validate returns an error", func() {
			So(cfg.Validate(), ShouldNotBeNil)
		})
	})

	Convey("Given a config with a non-positive port", t, func() {
		cfg := &Config{Server: ServerConfig{Mode: "release"}, DB: DBConfig{Host: "h", Name: "x", Port: 0, QueryTimeout: time.Second}}

		Convey("Then Validate returns an error", func() {
			So(cfg.Validate(), ShouldNotBeNil)
		})
	})

	Convey("Given a config with an unknown gin mode", t, func() {
		cfg := &Config{Server: ServerConfig{Mode: "prod"}, DB: DBConfig{Host: "h", Name: "x", Port: 5432, QueryTimeout: time.Second}}

		Convey("Then Validate names the bad mode", func() {
			err := cfg.Validate()
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "server.mode")
			So(err.Error(), ShouldContainSubstring, "prod")
		})
	})

	Convey("Given a complete config", t, func() {
		cfg := &Config{Server: ServerConfig{Mode: "release"}, DB: DBConfig{Host: "h", Name: "x", Port: 5432, QueryTimeout: time.Second}}

		Convey("Then Validate passes", func() {
			So(cfg.Validate(), ShouldBeNil)
		})
	})
}
