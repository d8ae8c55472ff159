package models

// Column / document field names shared by every store backend.
const (
	FieldUsername           = "username"
	FieldCustomerID         = "customer_id"
	FieldName               = "name"
	FieldEmail              = "email"
	FieldPhone              = "phone"
	FieldVehicleID          = "vehicle_id"
	FieldVehicleName        = "vehicle_name"
	FieldType               = "type"
	FieldBrand              = "brand"
	FieldAvailabilityStatus = "availability_status"
	FieldRentalID           = "rental_id"
	FieldNoOfDaysRented     = "no_of_days_rented"
	FieldSupplierID         = "supplier_id"
	FieldSupplierName       = "supplier_name"
	FieldContactInfo        = "contact_info"
	FieldPaymentID          = "payment_id"
	FieldAmount             = "amount"
	FieldPaymentDate        = "payment_date"
	FieldPaymentMethod      = "payment_method"
	FieldStatus             = "status"
)
