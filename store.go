package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ============================
// 🍈 Melon Store (katalog)
// ============================

// MelonStore menyimpan seluruh katalog di memori. Diisi sekali saat startup
// dari flat file, setelah itu read-only sehingga aman dipakai lintas request.
type MelonStore struct {
	melons map[string]MelonModel
	order  []string // urutan baris di file, dipakai GetAll
}

// NewMelonStoreFromFile membaca file pipe-delimited:
// id|name|price|image_url|color|seedless (tepat 6 field per baris).
// Satu baris rusak = seluruh load gagal, tidak ada partial load.
func NewMelonStoreFromFile(path string) (*MelonStore, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open melon file: %w", err)
	}
	defer f.Close()

	store := &MelonStore{melons: make(map[string]MelonModel)}

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}

		fields := strings.Split(line, "|")
		if len(fields) != 6 {
			return nil, fmt.Errorf("melon file line %d: expected 6 fields, got %d", lineNo, len(fields))
		}

		price, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("melon file line %d: invalid price %q: %w", lineNo, fields[2], err)
		}

		if fields[5] != "0" && fields[5] != "1" {
			return nil, fmt.Errorf("melon file line %d: invalid seedless flag %q", lineNo, fields[5])
		}

		melon := MelonModel{
			ID:       fields[0],
			Name:     fields[1],
			Price:    price,
			ImageURL: fields[3],
			Color:    fields[4],
			Seedless: fields[5] == "1",
		}

		if _, exists := store.melons[melon.ID]; !exists {
			store.order = append(store.order, melon.ID)
		}
		store.melons[melon.ID] = melon
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read melon file: %w", err)
	}

	return store, nil
}

// GetAll mengembalikan semua melon sesuai urutan di file.
func (s *MelonStore) GetAll() []MelonModel {
	all := make([]MelonModel, 0, len(s.order))
	for _, id := range s.order {
		all = append(all, s.melons[id])
	}
	return all
}

func (s *MelonStore) GetByID(id string) (MelonModel, bool) {
	melon, found := s.melons[id]
	return melon, found
}

func (s *MelonStore) Len() int {
	return len(s.melons)
}

// ============================
// 👤 Customer Store
// ============================

type CustomerStore struct {
	customers map[string]Customer // key: email
}

// NewCustomerStoreFromFile membaca file pipe-delimited:
// first_name|last_name|email|password (tepat 4 field per baris).
// Email duplikat tidak dianggap error: record terakhir yang menang.
func NewCustomerStoreFromFile(path string) (*CustomerStore, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open customer file: %w", err)
	}
	defer f.Close()

	store := &CustomerStore{customers: make(map[string]Customer)}

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}

		fields := strings.Split(line, "|")
		if len(fields) != 4 {
			return nil, fmt.Errorf("customer file line %d: expected 4 fields, got %d", lineNo, len(fields))
		}

		customer := Customer{
			FirstName: fields[0],
			LastName:  fields[1],
			Email:     fields[2],
			Password:  fields[3],
		}
		store.customers[customer.Email] = customer
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read customer file: %w", err)
	}

	return store, nil
}

func (s *CustomerStore) GetByEmail(email string) (Customer, bool) {
	customer, found := s.customers[email]
	return customer, found
}

func (s *CustomerStore) Len() int {
	return len(s.customers)
}
