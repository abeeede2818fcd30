package netregconst

const (
	// MinNameLength is the shortest allowed network name, in bytes.
	MinNameLength = 1
	// MaxNameLength is the longest allowed network name, in bytes.
	MaxNameLength = 50
	// MaxLocationLength is the longest allowed network location, in bytes.
	MaxLocationLength = 100

	// OwnerIDLength is the length of a V2 format wallet address
	// identifying a network owner.
	OwnerIDLength = 25

	// InvalidNameError is returned if network name length is out of
	// [MinNameLength, MaxNameLength] bounds.
	InvalidNameError = "invalid network name length"
	// InvalidLocationError is returned if network location is longer than
	// MaxLocationLength.
	InvalidLocationError = "network location is too long"
	// InvalidDeviceCountError is returned on a negative device count.
	InvalidDeviceCountError = "negative device count"
	// InvalidOwnerError is returned if owner is not a valid wallet address.
	InvalidOwnerError = "incorrect owner"
	// AlreadyExistsError is returned on attempt to register a network for
	// an owner that already has one.
	AlreadyExistsError = "network is already registered"
	// NotFoundError is returned if network is missing.
	NotFoundError = "network does not exist"
	// NotOwnerError is returned on attempt to modify a network recorded
	// under a different owner.
	NotOwnerError = "network owner mismatch"
)

// Stable numeric codes of the failure classes, matched by clients against
// fault messages of failed invocations.
const (
	// InvalidArgumentCode covers InvalidNameError, InvalidLocationError,
	// InvalidDeviceCountError and InvalidOwnerError.
	InvalidArgumentCode = 400
	// UnauthorizedCode covers NotOwnerError and failed owner witness checks.
	UnauthorizedCode = 403
	// NotFoundCode covers NotFoundError.
	NotFoundCode = 404
	// AlreadyExistsCode covers AlreadyExistsError.
	AlreadyExistsCode = 409
)
