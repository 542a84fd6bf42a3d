package service

// QRCodeService defines the interface for generating listing share QR codes.
type QRCodeService interface {
	// GenerateListingQRCode renders a PNG QR code encoding the public share
	// URL of a listing.
	GenerateListingQRCode(listingID string) ([]byte, error)

	// GetListingShareURL returns the public share URL encoded in the QR code.
	GetListingShareURL(listingID string) string
}
