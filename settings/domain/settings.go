package domain

// MosqueSettings holds the organisation-level configuration stored at
// app/settings. Only the fields this service reads are mapped.
type MosqueSettings struct {
	Name     string `firestore:"name"`
	Timezone string `firestore:"timezone"`
	Currency string `firestore:"currency"`
}
