package catalog

import (
	"net/url"
	"strings"
)

var medicineImages = map[string]string{
	"pills":       "https://images.unsplash.com/photo-1584308666744-24d5c474f2ae?w=400&h=300&fit=crop&auto=format",
	"tablets":     "https://images.unsplash.com/photo-1563213126-a4273aed2016?w=400&h=300&fit=crop&auto=format",
	"capsules":    "https://images.unsplash.com/photo-1471864190281-a93a3070b6de?w=400&h=300&fit=crop&auto=format",
	"bottles":     "https://images.unsplash.com/photo-1607619056574-7b8d3ee536b2?w=400&h=300&fit=crop&auto=format",
	"vitamins":    "https://images.unsplash.com/photo-1550572017-edd951b55104?w=400&h=300&fit=crop&auto=format",
	"antibiotics": "https://images.unsplash.com/photo-1584308666744-24d5c474f2ae?w=400&h=300&fit=crop&auto=format",
	"digestive":   "https://images.unsplash.com/photo-1607619056574-7b8d3ee536b2?w=400&h=300&fit=crop&auto=format",
	"generic":     "https://images.unsplash.com/photo-1584308666744-24d5c474f2ae?w=400&h=300&fit=crop&auto=format",
	"medicine1":   "https://images.unsplash.com/photo-1471864190281-a93a3070b6de?w=400&h=300&fit=crop&auto=format",
	"medicine2":   "https://images.unsplash.com/photo-1563213126-a4273aed2016?w=400&h=300&fit=crop&auto=format",
	"medicine3":   "https://images.unsplash.com/photo-1607619056574-7b8d3ee536b2?w=400&h=300&fit=crop&auto=format",
	"medicine4":   "https://images.unsplash.com/photo-1550572017-edd951b55104?w=400&h=300&fit=crop&auto=format",
}

// ImageURL resolves a product image from its name and category. Pure lookup:
// the same inputs always resolve to the same URL, unknown inputs fall back
// to the generic image.
func ImageURL(name, category string) string {
	n := strings.ToLower(name)
	c := strings.ToLower(category)

	switch {
	case strings.Contains(n, "aspirin"), strings.Contains(n, "ibuprofen"):
		return medicineImages["pills"]
	case strings.Contains(n, "vitamin"):
		return medicineImages["vitamins"]
	case strings.Contains(n, "antibiotic"), strings.Contains(n, "amoxicillin"):
		return medicineImages["antibiotics"]
	case strings.Contains(n, "paracetamol"), strings.Contains(n, "tylenol"):
		return medicineImages["tablets"]
	case strings.Contains(n, "omeprazole"), strings.Contains(c, "digestive"):
		return medicineImages["digestive"]
	case strings.Contains(c, "pain"):
		return medicineImages["pills"]
	case strings.Contains(c, "vitamin"):
		return medicineImages["vitamins"]
	case strings.Contains(c, "anti"):
		return medicineImages["tablets"]
	default:
		return medicineImages["generic"]
	}
}

// AlternativeImages returns the image set shown on the detail view.
func AlternativeImages(name string) []string {
	n := strings.ToLower(name)

	switch {
	case strings.Contains(n, "aspirin"):
		return []string{medicineImages["pills"], medicineImages["tablets"], medicineImages["medicine1"]}
	case strings.Contains(n, "ibuprofen"):
		return []string{medicineImages["tablets"], medicineImages["pills"], medicineImages["medicine2"]}
	case strings.Contains(n, "paracetamol"):
		return []string{medicineImages["tablets"], medicineImages["capsules"], medicineImages["medicine3"]}
	case strings.Contains(n, "amoxicillin"):
		return []string{medicineImages["antibiotics"], medicineImages["capsules"], medicineImages["bottles"]}
	case strings.Contains(n, "vitamin"):
		return []string{medicineImages["vitamins"], medicineImages["capsules"], medicineImages["medicine4"]}
	case strings.Contains(n, "omeprazole"):
		return []string{medicineImages["digestive"], medicineImages["bottles"], medicineImages["capsules"]}
	default:
		return []string{medicineImages["generic"], medicineImages["pills"], medicineImages["tablets"]}
	}
}

// FallbackImageURL is used by clients when an image fails to load.
func FallbackImageURL(name string) string {
	return "https://via.placeholder.com/400x300/E3F2FD/2196F3?text=" + url.QueryEscape(name)
}
