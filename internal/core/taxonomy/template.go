package taxonomy

import "github.com/lodgeworks/stayform/internal/core/domain"

// FieldsTemplate returns the canonical seed field set for a fresh document
// of the given category: every built-in field with an empty value. Callers
// get a fresh copy on every call. Unknown categories yield nil.
func FieldsTemplate(category domain.Category) []domain.Field {
	var tmpl []domain.Field
	switch category {
	case domain.CategoryHotelBase:
		tmpl = hotelBaseTemplate
	case domain.CategoryRoomType:
		tmpl = roomTypeTemplate
	case domain.CategoryFacility:
		tmpl = facilityTemplate
	case domain.CategoryPolicy:
		tmpl = policyTemplate
	case domain.CategoryPOI:
		tmpl = poiTemplate
	case domain.CategoryCustom:
		tmpl = customTemplate
	default:
		return nil
	}
	out := make([]domain.Field, len(tmpl))
	copy(out, tmpl)
	return out
}

func text(key, label, section string, required bool, placeholder string) domain.Field {
	return domain.Field{Key: key, Label: label, Type: domain.FieldTypeText, Required: required, Placeholder: placeholder, Section: section}
}

func textarea(key, label, section string, required bool, placeholder string) domain.Field {
	return domain.Field{Key: key, Label: label, Type: domain.FieldTypeTextarea, Required: required, Placeholder: placeholder, Section: section}
}

func toggle(key, label, section, subsection string) domain.Field {
	return domain.Field{Key: key, Label: label, Type: domain.FieldTypeBoolean, Section: section, Subsection: subsection}
}

func toggleWithOptions(key, label, section, subsection string) domain.Field {
	return domain.Field{Key: key, Label: label, Type: domain.FieldTypeBooleanWithOptions, Section: section, Subsection: subsection}
}

func toggleWithText(key, label, section, placeholder string) domain.Field {
	return domain.Field{Key: key, Label: label, Type: domain.FieldTypeBooleanWithText, Section: section, Placeholder: placeholder}
}

var hotelBaseTemplate = []domain.Field{
	text("hotelName", "Hotel name", "Basic Information", true, "Enter the hotel name"),
	text("hotelNameLocal", "Local name", "Basic Information", false, "Name in the local language"),
	textarea("address", "Address", "Basic Information", true, "Enter the full street address"),
	textarea("description", "Hotel description", "Basic Information", true, "Describe the hotel"),
	text("country", "Country", "Basic Information", true, "e.g. France"),
	text("city", "City", "Basic Information", true, "e.g. Paris"),

	text("phone", "Phone", "Contact", true, "e.g. +33 1 23 45 67 89"),
	text("email", "Email", "Contact", false, "e.g. stay@example.com"),
	text("postalCode", "Postal code", "Contact", false, "e.g. 75001"),

	text("starRating", "Star rating", "Core Amenities", true, "e.g. 5-star"),
	text("brandName", "Brand", "Core Amenities", false, "e.g. Hilton"),
	text("roomCount", "Number of rooms", "Core Amenities", true, "e.g. 200"),

	text("openingYear", "Opening year", "Opening & Renovation", false, "e.g. 2020"),
	text("renovationYear", "Last renovation", "Opening & Renovation", false, "e.g. 2023"),

	textarea("subway", "Metro", "Transport Access", false, "e.g. 500m from Line 1 station"),
	textarea("airport", "Airport", "Transport Access", false, "e.g. 30km from the international airport"),
	textarea("publicTransport", "Public transport", "Transport Access", false, "Nearby bus and tram lines"),
	textarea("driving", "By car", "Transport Access", false, "Driving directions or parking notes"),
}

var roomTypeTemplate = []domain.Field{
	text("roomTypeName", "Room type name", "Room Type Name", true, "e.g. Deluxe Sea View King"),

	text("roomArea", "Room area", "Basic Information", true, "e.g. 45 sqm"),
	text("bedType", "Bed type", "Basic Information", true, "e.g. one 1.8m king bed"),
	text("floor", "Floor", "Basic Information", false, "e.g. floors 4-7"),
	text("capacity", "Capacity", "Basic Information", true, "e.g. sleeps 2"),
	text("view", "View", "Basic Information", false, "e.g. sea view"),
	text("hasWindow", "Windows", "Basic Information", false, "e.g. with window"),
	text("nonSmoking", "Smoking policy", "Basic Information", false, "e.g. non-smoking"),

	toggle("amenityToothbrush", "Toothbrush", "Bathroom", "Bath Amenities"),
	toggle("amenityShowerGel", "Shower gel", "Bathroom", "Bath Amenities"),
	toggle("amenityShampoo", "Shampoo", "Bathroom", "Bath Amenities"),
	toggle("amenityConditioner", "Conditioner", "Bathroom", "Bath Amenities"),
	toggle("amenityBathTowel", "Bath towel", "Bathroom", "Bath Amenities"),
	toggle("amenityBathrobe", "Bathrobe", "Bathroom", "Bath Amenities"),
	toggle("amenityRazor", "Razor", "Bathroom", "Bath Amenities"),
	toggle("bathroomBathtub", "Bathtub", "Bathroom", "Bathroom Fixtures"),
	toggle("bathroomShower", "Shower", "Bathroom", "Bathroom Fixtures"),
	toggle("bathroomHairdryer", "Hair dryer", "Bathroom", "Bathroom Fixtures"),
	toggle("bathroomHotWater", "24h hot water", "Bathroom", "Bathroom Fixtures"),
	toggle("bathroomSlippers", "Slippers", "Bathroom", "Bathroom Fixtures"),

	toggle("netWifi", "Free Wi-Fi", "Internet & Communication", ""),
	toggle("netWired", "Wired internet", "Internet & Communication", ""),
	toggle("netPhone", "In-room phone", "Internet & Communication", ""),

	toggle("layoutDesk", "Desk", "Layout & Furniture", ""),
	toggle("layoutSofa", "Sofa", "Layout & Furniture", ""),
	toggle("layoutWardrobe", "Wardrobe", "Layout & Furniture", ""),
	toggle("layoutBalcony", "Balcony", "Layout & Furniture", ""),

	toggle("roomAircon", "Air conditioning", "Room Amenities", ""),
	toggle("roomHeating", "Heating", "Room Amenities", ""),
	toggle("roomSafe", "In-room safe", "Room Amenities", ""),
	toggle("roomBlackout", "Blackout curtains", "Room Amenities", ""),
	toggle("roomIron", "Iron and board", "Room Amenities", ""),

	toggle("mediaTV", "Television", "Media & Technology", ""),
	toggle("mediaStreaming", "Streaming access", "Media & Technology", ""),
	toggle("mediaUSB", "USB charging points", "Media & Technology", ""),

	toggleWithOptions("foodMinibar", "Minibar", "Food & Drink", ""),
	toggleWithOptions("foodBreakfastInRoom", "In-room breakfast", "Food & Drink", ""),
	toggle("foodKettle", "Electric kettle", "Food & Drink", ""),
	toggle("foodFreeWater", "Free bottled water", "Food & Drink", ""),

	toggleWithOptions("serviceLaundry", "Laundry service", "Convenience Services", ""),
	toggle("serviceTurndown", "Turndown service", "Convenience Services", ""),
	toggle("serviceWakeup", "Wake-up call", "Convenience Services", ""),
}

var facilityTemplate = []domain.Field{
	text("facilityName", "Facility overview", "Basic Information", true, "Summarise on-site facilities"),

	toggleWithOptions("frontdeskLuggage", "Luggage storage", "Front Desk", ""),
	toggleWithOptions("frontdeskPorter", "Porter", "Front Desk", ""),
	toggleWithOptions("frontdeskConcierge", "Concierge", "Front Desk", ""),
	toggleWithOptions("frontdeskSafe", "Front-desk safe", "Front Desk", ""),
	toggleWithOptions("frontdeskCurrency", "Currency exchange", "Front Desk", ""),
	{Key: "frontdeskMultilingual", Label: "Multilingual staff", Type: domain.FieldTypeBooleanWithLanguages, Section: "Front Desk"},

	toggle("publicLobby", "Lobby lounge", "Public Areas", ""),
	toggle("publicGarden", "Garden", "Public Areas", ""),
	toggle("publicTerrace", "Terrace", "Public Areas", ""),
	toggle("publicElevator", "Elevator", "Public Areas", ""),

	toggleWithOptions("businessMeeting", "Meeting rooms", "Business Services", ""),
	toggleWithOptions("businessPrinting", "Printing", "Business Services", ""),

	toggle("accessibleEntrance", "Step-free entrance", "Accessibility", ""),
	toggle("accessibleElevator", "Accessible elevator", "Accessibility", ""),
	toggleWithText("accessiblePoolRamp", "Pool ramp", "Accessibility", "Details if a pool is present"),

	toggleWithOptions("entertainPool", "Swimming pool", "Entertainment", "Pool"),
	toggleWithOptions("entertainCards", "Card room", "Entertainment", "Card Room"),
	toggleWithOptions("entertainGames", "Game room", "Entertainment", "Game Room"),
	toggleWithOptions("entertainCinema", "Screening room", "Entertainment", "Screening Room"),

	toggleWithText("transportAirportPickup", "Airport pick-up", "Transport Services", "Fee, e.g. 30 EUR per trip"),
	toggleWithText("transportParking", "Private parking", "Transport Services", "Fee, e.g. 20 EUR per day"),
	toggleWithText("transportShuttle", "Shuttle service", "Transport Services", "Fee and schedule"),

	toggle("kidsPlayground", "Playground", "Family & Kids", ""),
	toggleWithText("kidsCare", "Child care", "Family & Kids", "Fee and hours"),

	toggleWithOptions("wellnessSpa", "Spa", "Wellness", "Spa"),
	toggleWithOptions("wellnessMassage", "Massage", "Wellness", "Massage"),
	toggleWithOptions("wellnessSauna", "Sauna", "Wellness", "Sauna"),

	toggleWithOptions("diningRestaurant", "Restaurant", "Dining", "Restaurant"),
	toggleWithOptions("diningBar", "Bar", "Dining", "Bar"),
	toggleWithOptions("diningCafe", "Cafe", "Dining", "Cafe"),

	toggleWithOptions("sportsGym", "Gym", "Sports", "Gym"),
	toggleWithOptions("sportsYoga", "Yoga classes", "Sports", "Yoga"),

	toggle("cleaningDaily", "Daily housekeeping", "Cleaning Services", ""),
	toggleWithOptions("cleaningDryClean", "Dry cleaning", "Cleaning Services", ""),

	toggle("securityCCTV", "CCTV in public areas", "Safety & Security", ""),
	toggle("security24h", "24-hour security", "Safety & Security", ""),
	toggle("securitySmokeAlarm", "Smoke alarms", "Safety & Security", ""),
}

var policyTemplate = []domain.Field{
	text("checkinTime", "Check-in from", "Check-in & Check-out", true, "e.g. 15:00"),
	text("checkoutTime", "Check-out until", "Check-in & Check-out", true, "e.g. 12:00"),
	textarea("earlyLateArrangements", "Early/late arrangements", "Check-in & Check-out", false, "Early check-in and late check-out terms"),

	textarea("bookingNotes", "Booking notes", "Booking Notes", false, "Guarantee, cancellation and prepayment terms"),
	textarea("stayNotes", "Stay notes", "Stay Notes", false, "House rules guests should know"),

	text("minCheckinAge", "Minimum check-in age", "Age Restrictions", false, "e.g. 18"),

	toggleWithText("petsAllowed", "Pets allowed", "Pets", "Conditions and fees"),
	toggle("serviceAnimals", "Service animals welcome", "Service Animals", ""),

	textarea("childrenPolicy", "Children policy", "Children & Extra Beds", true, "Age limits and child rates"),
	toggleWithText("extraBeds", "Extra beds available", "Children & Extra Beds", "Fee per night"),

	textarea("paymentMethods", "Accepted payment methods", "Payment Methods", true, "Cards, cash, mobile payment"),

	toggleWithText("breakfastOffered", "Breakfast offered", "Breakfast", "Price, hours, buffet or menu"),
}

var poiTemplate = []domain.Field{
	{Key: "poiTransport", Label: "Getting around", Type: domain.FieldTypePOIList, Section: "Transport"},
	{Key: "poiAttractions", Label: "Attractions", Type: domain.FieldTypePOIList, Section: "Attractions"},
	{Key: "poiFood", Label: "Restaurants nearby", Type: domain.FieldTypePOIList, Section: "Food"},
	{Key: "poiShopping", Label: "Shopping", Type: domain.FieldTypePOIList, Section: "Shopping"},
}

var customTemplate = []domain.Field{
	text("customTitle", "Title", "Basic Information", true, "Enter a title"),
	text("customType", "Kind", "Basic Information", false, "e.g. package, activity, seasonal offer"),
	textarea("customContent", "Content", "Basic Information", true, "Enter the details"),
	textarea("customNote", "Notes", "Basic Information", false, "Anything else worth recording"),
}
