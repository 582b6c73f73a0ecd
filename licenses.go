package cleanrun

// License identifies one of the licenses recognized for the
// informational line in --version output.
type License int

const (
	LicenseNone License = iota
	Apache2
	BSD3Clause
	MIT
)

// String returns the informational license text used by --version.
func (l License) String() string {
	switch l {
	case Apache2:
		return "Apache Version 2.0 <http://www.apache.org/licenses/LICENSE-2.0>"
	case BSD3Clause:
		return "BSD 3-Clause <https://opensource.org/license/bsd-3-clause>"
	case MIT:
		return "MIT <https://opensource.org/license/mit>"
	default:
		return ""
	}
}

// ParseLicense maps an SPDX identifier to a License. This is
// best-effort: compound expressions and unknown identifiers yield
// (LicenseNone, false).
func ParseLicense(spdx string) (License, bool) {
	switch spdx {
	case "Apache-2.0":
		return Apache2, true
	case "BSD-3-Clause":
		return BSD3Clause, true
	case "MIT":
		return MIT, true
	default:
		return LicenseNone, false
	}
}
