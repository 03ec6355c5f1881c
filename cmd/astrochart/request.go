package main

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/seleneworks/astrochart/internal/log"
	"github.com/seleneworks/astrochart/pkg/aspects"
	"github.com/seleneworks/astrochart/pkg/chart"
	"github.com/seleneworks/astrochart/pkg/ephemeris"
	"github.com/seleneworks/astrochart/pkg/houses"
)

// requestFromFlags assembles a chart request from the persistent flags
// and config. An empty --date means the current UTC date and time.
func requestFromFlags() (chart.Request, error) {
	req := chart.Request{
		TZOffsetHours: viper.GetFloat64("tz"),
		LatDeg:        viper.GetFloat64("lat"),
		LonDeg:        viper.GetFloat64("lon"),
		Sidereal:      viper.GetBool("sidereal"),
	}

	sys, err := houses.ParseSystem(viper.GetString("house-system"))
	if err != nil {
		return chart.Request{}, err
	}
	req.HouseSystem = sys

	date := viper.GetString("date")
	if date == "" {
		now := time.Now().UTC()
		req.Year, req.Month, req.Day = now.Year(), int(now.Month()), now.Day()
		req.Hour, req.Minute = now.Hour(), now.Minute()
		req.Second = float64(now.Second())
		req.TZOffsetHours = 0
		return req, nil
	}

	if _, err := fmt.Sscanf(date, "%d-%d-%d", &req.Year, &req.Month, &req.Day); err != nil {
		return chart.Request{}, fmt.Errorf("parse date %q: expected YYYY-MM-DD", date)
	}
	clock := viper.GetString("time")
	if n, _ := fmt.Sscanf(clock, "%d:%d:%f", &req.Hour, &req.Minute, &req.Second); n < 2 {
		return chart.Request{}, fmt.Errorf("parse time %q: expected HH:MM or HH:MM:SS", clock)
	}
	return req, nil
}

// newEngine builds the calculation engine, opening a JPL ephemeris when
// one is configured. The returned cleanup must run after the engine is
// done.
func newEngine() (*chart.Engine, func(), error) {
	opts := []chart.Option{chart.WithLogger(log.GetZapLogger())}
	cleanup := func() {}

	if path := viper.GetString("ephemeris"); path != "" {
		jpl, err := ephemeris.OpenJPL(path)
		if err != nil {
			return nil, nil, err
		}
		log.Debugw("using jpl ephemeris", "path", path)
		opts = append(opts, chart.WithProvider(jpl))
		cleanup = func() {
			if err := jpl.Close(); err != nil {
				log.Errorf("closing ephemeris: %v", err)
			}
		}
	}
	if viper.GetBool("include-retrograde") {
		opts = append(opts, chart.WithAspectOptions(aspects.Options{IncludeRetrograde: true}))
	}
	return chart.NewEngine(opts...), cleanup, nil
}

var signNames = [...]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// formatZodiac renders an ecliptic longitude as degrees and minutes
// within its zodiac sign.
func formatZodiac(lonDeg float64) string {
	sign := int(lonDeg/30) % 12
	within := lonDeg - float64(sign*30)
	deg := int(within)
	min := (within - float64(deg)) * 60
	return fmt.Sprintf("%2d°%05.2f' %s", deg, min, signNames[sign])
}
