package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"

	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

// A tiny helper to import a product catalog from CSV into MySQL.
// Columns: name, description, category, price (cedis, e.g. 12.50),
// spec_json, in_stock (0/1), sold.
// Usage:
//   go run ./tools/catalogimport \
//     -dsn  "root:kasa@tcp(mysql:3306)/kasamarket?charset=utf8mb4&parseTime=True&loc=Local" \
//     -file "manifest/seed/products.csv"
func main() {
	dsn := flag.String("dsn", "", "MySQL DSN")
	file := flag.String("file", "manifest/seed/products.csv", "path to the catalog CSV")
	truncate := flag.Bool("truncate", false, "truncate the products table before import")
	flag.Parse()

	if *dsn == "" {
		log.Fatal("-dsn is required")
	}

	f, err := os.Open(*file)
	if err != nil {
		log.Fatalf("open csv: %v", err)
	}
	defer f.Close()

	ctx := context.Background()
	conn := sqlx.NewMysql(*dsn)

	if *truncate {
		if _, err := conn.ExecCtx(ctx, "truncate table `products`"); err != nil {
			log.Fatalf("truncate products: %v", err)
		}
	}

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 7

	imported := 0
	for line := 1; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatalf("read csv line %d: %v", line, err)
		}

		cedis, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			log.Fatalf("line %d: bad price %q: %v", line, record[3], err)
		}
		price := int64(math.Round(cedis * 100))

		inStock, err := strconv.ParseInt(record[5], 10, 64)
		if err != nil {
			log.Fatalf("line %d: bad in_stock %q: %v", line, record[5], err)
		}
		sold, err := strconv.ParseInt(record[6], 10, 64)
		if err != nil {
			log.Fatalf("line %d: bad sold %q: %v", line, record[6], err)
		}

		_, err = conn.ExecCtx(ctx,
			"insert into `products` (`name`, `description`, `category`, `price`, `spec_json`, `in_stock`, `sold`) values (?, ?, ?, ?, ?, ?, ?)",
			record[0], record[1], record[2], price, record[4], inStock, sold)
		if err != nil {
			log.Fatalf("line %d: insert %q: %v", line, record[0], err)
		}
		imported++
	}

	fmt.Printf("Imported %d products.\n", imported)
}
