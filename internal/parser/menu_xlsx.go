package parser

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/fevziatanoglu/cafe-management/internal/domain"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MenuXLSXParser reads an uploaded menu spreadsheet into catalog products.
// Expected columns: name, price, category, description, available. A row
// with only the first cell filled is treated as a category header for the
// rows below it.
type MenuXLSXParser struct{}

func New() *MenuXLSXParser {
	return &MenuXLSXParser{}
}

func (p *MenuXLSXParser) ParseProducts(file []byte, adminID, menuID primitive.ObjectID) ([]domain.Product, error) {
	f, err := excelize.OpenReader(bytes.NewReader(file))
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in spreadsheet")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("no data found in spreadsheet")
	}

	products := []domain.Product{}
	var currentCategory string

	// skip header
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}

		// check if this is a category row
		if len(row) == 1 || (len(row) > 1 && strings.TrimSpace(row[1]) == "") {
			currentCategory = strings.TrimSpace(row[0])
			continue
		}

		product := domain.Product{
			Name:      strings.TrimSpace(row[0]),
			Category:  currentCategory,
			Available: true,
			AdminID:   adminID,
			MenuID:    menuID,
		}

		price, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid price %q on row %d", row[1], i+1)
		}
		product.Price = price

		if len(row) > 2 && strings.TrimSpace(row[2]) != "" {
			product.Category = strings.TrimSpace(row[2])
		}
		if len(row) > 3 {
			product.Description = strings.TrimSpace(row[3])
		}
		if len(row) > 4 && strings.TrimSpace(row[4]) != "" {
			available := strings.TrimSpace(row[4])
			product.Available = strings.EqualFold(available, "true") || available == "1"
		}

		products = append(products, product)
	}

	if len(products) == 0 {
		return nil, fmt.Errorf("no products found in spreadsheet")
	}

	return products, nil
}
