package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/seleneworks/astrochart/pkg/chart"
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Compute a full chart: positions, houses and aspects",
	RunE:  runChart,
}

func init() {
	rootCmd.AddCommand(chartCmd)
}

type bodyJSON struct {
	Name       string  `json:"name"`
	Longitude  float64 `json:"longitude"`
	Latitude   float64 `json:"latitude"`
	Speed      float64 `json:"speed"`
	Retrograde bool    `json:"retrograde"`
	House      int     `json:"house"`
}

type houseJSON struct {
	Number int     `json:"number"`
	Cusp   float64 `json:"cusp"`
}

type aspectJSON struct {
	BodyA    string  `json:"bodyA"`
	BodyB    string  `json:"bodyB"`
	Type     string  `json:"type"`
	Orb      float64 `json:"orb"`
	Applying bool    `json:"applying"`
}

type chartJSON struct {
	JulianDate float64      `json:"julianDate"`
	System     string       `json:"houseSystem"`
	Ascendant  float64      `json:"ascendant"`
	Midheaven  float64      `json:"midheaven"`
	Ayanamsa   float64      `json:"ayanamsa,omitempty"`
	Bodies     []bodyJSON   `json:"bodies"`
	Houses     []houseJSON  `json:"houses"`
	Aspects    []aspectJSON `json:"aspects"`
}

func chartToJSON(c *chart.Chart) chartJSON {
	out := chartJSON{
		JulianDate: c.JulianDate,
		System:     c.System.String(),
		Ascendant:  c.AscDeg,
		Midheaven:  c.MCDeg,
		Ayanamsa:   c.AyanamsaDeg,
	}
	for _, b := range c.Bodies {
		out.Bodies = append(out.Bodies, bodyJSON{
			Name:       b.Body.String(),
			Longitude:  b.LonDeg,
			Latitude:   b.LatDeg,
			Speed:      b.SpeedDegPerDay,
			Retrograde: b.Retrograde,
			House:      b.House,
		})
	}
	for _, h := range c.Houses {
		out.Houses = append(out.Houses, houseJSON{Number: h.Number, Cusp: h.CuspDeg})
	}
	for _, a := range c.Aspects {
		out.Aspects = append(out.Aspects, aspectJSON{
			BodyA:    a.BodyA.String(),
			BodyB:    a.BodyB.String(),
			Type:     a.Type.String(),
			Orb:      a.OrbDeg,
			Applying: a.Applying,
		})
	}
	return out
}

func emitJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func runChart(cmd *cobra.Command, args []string) error {
	req, err := requestFromFlags()
	if err != nil {
		return err
	}
	eng, cleanup, err := newEngine()
	if err != nil {
		return err
	}
	defer cleanup()

	c, err := eng.Compute(cmd.Context(), req)
	if err != nil {
		return err
	}

	if viper.GetBool("json") {
		return emitJSON(chartToJSON(c))
	}

	fmt.Printf("Julian date %.5f, %s houses\n", c.JulianDate, c.System)
	if c.AyanamsaDeg != 0 {
		fmt.Printf("Sidereal, ayanamsa %.4f°\n", c.AyanamsaDeg)
	}
	fmt.Printf("Asc %s   MC %s\n\n", formatZodiac(c.AscDeg), formatZodiac(c.MCDeg))

	printBodyTable(c.Bodies)

	fmt.Println()
	for _, h := range c.Houses {
		fmt.Printf("House %2d  %s\n", h.Number, formatZodiac(h.CuspDeg))
	}

	if len(c.Aspects) > 0 {
		fmt.Println()
		printAspectTable(c.Aspects)
	}
	return nil
}
