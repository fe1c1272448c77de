package delivery

import (
	"fmt"

	"mtaani/internal/pkg/errs"
	"mtaani/internal/pkg/guard"
)

// PackageSize classifies the physical size of a package.
type PackageSize int

const (
	// SizeUnspecified is used when the customer did not pick a size class.
	SizeUnspecified PackageSize = iota
	// SizeSmall fits in a courier bag.
	SizeSmall
	// SizeMedium fits on a motorbike carrier.
	SizeMedium
	// SizeLarge needs a car or van.
	SizeLarge
)

func getPackageSizeStrings() map[PackageSize]string {
	return map[PackageSize]string{
		SizeUnspecified: "",
		SizeSmall:       "small",
		SizeMedium:      "medium",
		SizeLarge:       "large",
	}
}

// PackageSizeFromString parses a persisted size label. The empty string maps
// to SizeUnspecified; unknown labels are rejected.
func PackageSizeFromString(s string) (PackageSize, error) {
	for size, label := range getPackageSizeStrings() {
		if label == s {
			return size, nil
		}
	}
	return SizeUnspecified, errs.NewValueIsInvalidErrorWithCause(
		"packageSize", fmt.Errorf("%q is not a known package size", s))
}

// String returns the persisted label of the size class.
func (s PackageSize) String() string {
	if str, ok := getPackageSizeStrings()[s]; ok {
		return str
	}
	return ""
}

// Validate checks that the size is one of the defined classes.
func (s PackageSize) Validate() error {
	if _, ok := getPackageSizeStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"packageSize", fmt.Errorf("%d is not a valid package size", s))
	}
	return nil
}

// ErrPackageIsNotConstructed is returned when validating a zero-value
// PackageInfo.
var ErrPackageIsNotConstructed = errs.NewValueIsRequiredError(
	"package info must be created via NewPackageInfo constructor")

// PackageInfo describes what is being moved: type, free-text description,
// optional weight in kilograms, size class, and photo references.
// Immutable after construction.
type PackageInfo struct { //nolint:recvcheck //using for validation
	packageType string
	description string
	weightKg    *float64
	size        PackageSize
	photos      []string

	guard guard.ConstructorGuard
}

// NewPackageInfo creates a validated package description. Type and
// description are mandatory; weight, when present, must be non-negative.
func NewPackageInfo(
	packageType string,
	description string,
	weightKg *float64,
	size PackageSize,
	photos []string,
) (PackageInfo, error) {
	p := PackageInfo{
		guard: guard.NewConstructorGuard(),
	}

	if packageType == "" {
		return PackageInfo{}, errs.NewValueIsRequiredError("packageType")
	}
	if description == "" {
		return PackageInfo{}, errs.NewValueIsRequiredError("packageDescription")
	}
	if weightKg != nil && *weightKg < 0 {
		return PackageInfo{}, errs.NewValueIsInvalidErrorWithCause(
			"packageWeight", fmt.Errorf("%v kg is negative", *weightKg))
	}
	if err := size.Validate(); err != nil {
		return PackageInfo{}, err
	}

	p.packageType = packageType
	p.description = description
	p.weightKg = weightKg
	p.size = size
	p.photos = append([]string(nil), photos...)

	return p, nil
}

// Validate checks that the PackageInfo was built through the constructor.
func (p PackageInfo) Validate() error {
	return p.guard.Validate(ErrPackageIsNotConstructed)
}

// Type returns the package type label (documents, groceries, ...).
func (p PackageInfo) Type() string { return p.packageType }

// Description returns the customer's free-text description.
func (p PackageInfo) Description() string { return p.description }

// WeightKg returns the declared weight, or nil if not provided.
func (p PackageInfo) WeightKg() *float64 { return p.weightKg }

// Size returns the size class.
func (p PackageInfo) Size() PackageSize { return p.size }

// Photos returns a copy of the photo reference list.
func (p PackageInfo) Photos() []string {
	return append([]string(nil), p.photos...)
}
