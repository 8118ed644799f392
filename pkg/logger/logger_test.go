package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParseLevel(t *testing.T) {
	Convey("Given level strings", t, func() {
		So(ParseLevel("debug"), ShouldEqual, zerolog.DebugLevel)
		So(ParseLevel(" WARN "), ShouldEqual, zerolog.WarnLevel)
		So(ParseLevel("error"), ShouldEqual, zerolog.ErrorLevel)

		Convey("Unknown or empty levels fall back to info", func() {
			So(ParseLevel("verbose"), ShouldEqual, zerolog.InfoLevel)
			So(ParseLevel(""), ShouldEqual, zerolog.InfoLevel)
		})
	})
}

func TestNew(t *testing.T) {
	Convey("Given a json logger at info level", t, func() {
		var buf bytes.Buffer
		l := New(&buf, "info", "json")
		defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

		Convey("When logging below and at the level", func() {
			l.Debug().Msg("hidden")
			l.Info().Str("noc", "BRA").Msg("shown")

			Convey("Then only the info line is written as json", func() {
				lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
				So(len(lines), ShouldEqual, 1)

				var entry map[string]interface{}
				So(json.Unmarshal(lines[0], &entry), ShouldBeNil)
				So(entry["message"], ShouldEqual, "shown")
				So(entry["noc"], ShouldEqual, "BRA")
				So(entry["level"], ShouldEqual, "info")
			})
		})
	})

	Convey("Given a console logger", t, func() {
		var buf bytes.Buffer
		l := New(&buf, "debug", "console")
		defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

		l.Info().Msg("hello")

		Convey("Then the output is not json", func() {
			So(buf.String(), ShouldContainSubstring, "hello")
			So(json.Valid(bytes.TrimSpace(buf.Bytes())), ShouldBeFalse)
		})
	})
}
