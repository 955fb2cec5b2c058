// Package genomes normalizes UCSC genome listings into a single seven
// column organism table: database name, description, common name,
// scientific name, domain, clade and NCBI taxonomy id.
package genomes

import "strings"

// Domain names used in the normalized table.
const (
	DomainArchaea   = "archaea"
	DomainEukaryota = "eukaryota"
)

// Columns names the normalized output columns in order.
var Columns = []string{"db_name", "description", "common_name", "scientific_name", "domain", "clade", "taxid"}

// Organism is one row of the normalized table.
type Organism struct {
	DBName         string `json:"db_name" yaml:"db_name"`
	Description    string `json:"description" yaml:"description"`
	CommonName     string `json:"common_name" yaml:"common_name"`
	ScientificName string `json:"scientific_name" yaml:"scientific_name"`
	Domain         string `json:"domain" yaml:"domain"`
	Clade          string `json:"clade" yaml:"clade"`
	TaxID          string `json:"taxid" yaml:"taxid"`
}

// Fields returns the row in column order.
func (o Organism) Fields() []string {
	return []string{o.DBName, o.Description, o.CommonName, o.ScientificName, o.Domain, o.Clade, o.TaxID}
}

// Line returns the tab-separated row.
func (o Organism) Line() string {
	return strings.Join(o.Fields(), "\t")
}
