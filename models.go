package main

type MelonModel struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"image_url"`
	Color    string  `json:"color"`
	Seedless bool    `json:"seedless"`
}

// CartLineModel adalah satu baris di halaman cart:
// melon + quantity + total per baris.
type CartLineModel struct {
	Melon     MelonModel `json:"melon"`
	Quantity  int        `json:"quantity"`
	LineTotal float64    `json:"line_total"`
}
