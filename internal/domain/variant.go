package domain

import "fmt"

// Column names shared by every membership variant.
const (
	IDColumn          = "id"
	OwnerColumn       = "member_id"
	BusinessKeyColumn = "tax_id"
	DisplayNameColumn = "company_name"
)

// Variant is one membership table family. The root table holds one row per
// member company; child tables hang off it via the owner column.
type Variant struct {
	Name        string
	tablePrefix string
}

var (
	VariantOrdinary  = Variant{Name: "ordinary", tablePrefix: "ordinary_"}
	VariantAssociate = Variant{Name: "associate", tablePrefix: "associate_"}
)

// SupportedVariants is the statically known set this portal manages.
var SupportedVariants = []Variant{VariantOrdinary, VariantAssociate}

// VariantByName resolves a variant name supplied by a caller.
func VariantByName(name string) (Variant, error) {
	for _, v := range SupportedVariants {
		if v.Name == name {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("%w: %q", ErrUnsupportedVariant, name)
}

// RootTable returns the variant's member table name.
func (v Variant) RootTable() string {
	return v.tablePrefix + "member"
}

// ChildTable returns the variant's table name for a child family.
func (v Variant) ChildTable(family ChildFamily) string {
	return v.tablePrefix + family.TableSuffix
}

// ChildFamily declares one dependent table family and the portable subset of
// its columns. Child schemas are simple enough to hand-declare; they do not go
// through full catalog reconciliation the way the root does.
type ChildFamily struct {
	Name           string
	TableSuffix    string
	OwnerColumn    string
	PortableFields []string
}

// ChildFamilies lists every dependent family a member row owns, in dependency
// order. Deletions run in reverse over this slice.
var ChildFamilies = []ChildFamily{
	{Name: "address", TableSuffix: "address", OwnerColumn: OwnerColumn,
		PortableFields: []string{"address_line", "subdistrict", "district", "province", "postal_code", "address_type"}},
	{Name: "contact", TableSuffix: "contact", OwnerColumn: OwnerColumn,
		PortableFields: []string{"full_name", "position", "email", "phone"}},
	{Name: "representative", TableSuffix: "representative", OwnerColumn: OwnerColumn,
		PortableFields: []string{"full_name", "position", "national_id", "is_primary"}},
	{Name: "business_type", TableSuffix: "business_type", OwnerColumn: OwnerColumn,
		PortableFields: []string{"business_code"}},
	{Name: "business_type_other", TableSuffix: "business_type_other", OwnerColumn: OwnerColumn,
		PortableFields: []string{"detail"}},
	{Name: "product", TableSuffix: "product", OwnerColumn: OwnerColumn,
		PortableFields: []string{"product_name", "tsic_code"}},
	{Name: "industry_group", TableSuffix: "industry_group", OwnerColumn: OwnerColumn,
		PortableFields: []string{"group_code"}},
	{Name: "provincial_chapter", TableSuffix: "provincial_chapter", OwnerColumn: OwnerColumn,
		PortableFields: []string{"chapter_code"}},
	{Name: "document", TableSuffix: "document", OwnerColumn: OwnerColumn,
		PortableFields: []string{"doc_type", "file_name", "file_path", "uploaded_at"}},
	{Name: "signature", TableSuffix: "signature", OwnerColumn: OwnerColumn,
		PortableFields: []string{"signer_name", "signer_position", "signed_at"}},
}

// RootBaseFields are the columns every variant's member table carries by
// portal convention: identity, naming, business key, contact and lifecycle
// columns. The relocation engine widens this set with the actual catalog
// intersection of the two root tables, so a column shared by both variants is
// copied even when it is missing here.
var RootBaseFields = []string{
	BusinessKeyColumn,
	DisplayNameColumn,
	"company_name_en",
	"email",
	"phone",
	"status",
	"created_at",
	"updated_at",
}
