package main

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Dacosmicgiant/calorie-tracker/config"
	"github.com/Dacosmicgiant/calorie-tracker/logger"
	"github.com/Dacosmicgiant/calorie-tracker/models"
)

// loadfood imports the food catalog from a CSV with Food, Serving and
// Calories columns. Calorie values may carry thousands separators and a
// " cal" suffix. Rows that don't parse are skipped, existing foods are
// left untouched, and the run reports how many rows it created.
func main() {
	log, err := logger.New(os.Getenv("APP_ENV"))
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	path := "dataset.csv"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	db := config.InitDB(log)

	f, err := os.Open(path)
	if err != nil {
		log.Fatal("cannot open csv", "path", path, "err", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		log.Fatal("cannot read csv header", "err", err)
	}

	cols := map[string]int{}
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"Food", "Serving", "Calories"} {
		if _, ok := cols[required]; !ok {
			log.Fatal("missing csv column", "column", required)
		}
	}

	created, skipped := 0, 0
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Warn("skipping unreadable row", "err", err)
			skipped++
			continue
		}

		name := strings.TrimSpace(row[cols["Food"]])
		calories, err := parseCalories(row[cols["Calories"]])
		if name == "" || err != nil {
			log.Warn("skipping malformed row", "food", name, "err", err)
			skipped++
			continue
		}

		food := models.Food{Name: name}
		res := db.
			Where("name = ?", name).
			Attrs(models.Food{
				Serving:            strings.TrimSpace(row[cols["Serving"]]),
				CaloriesPerServing: calories,
			}).
			FirstOrCreate(&food)
		if res.Error != nil {
			log.Warn("skipping row, db error", "food", name, "err", res.Error)
			skipped++
			continue
		}
		if res.RowsAffected > 0 {
			created++
		}
	}

	log.Info("food import finished", "created", created, "skipped", skipped)
}

// parseCalories accepts values like "1,234 cal".
func parseCalories(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimSuffix(raw, " cal")
	raw = strings.ReplaceAll(raw, ",", "")
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, errors.New("calories must be positive")
	}
	return n, nil
}
