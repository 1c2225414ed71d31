package dal

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/masjidsuite/donations-service/framework/connection"
	"github.com/masjidsuite/donations-service/settings/domain"
)

const (
	appCollection = "app"
	settingsDoc   = "settings"
)

// SettingsFirestore reads the organisation settings document.
type SettingsFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

func NewSettingsFirestore(fun connection.FirestoreFromContextFun) *SettingsFirestore {
	return &SettingsFirestore{
		firestoreClientFun: fun,
	}
}

func (d *SettingsFirestore) settingsRef(ctx context.Context) *firestore.DocumentRef {
	return d.firestoreClientFun(ctx).Collection(appCollection).Doc(settingsDoc)
}

func (d *SettingsFirestore) GetSettings(ctx context.Context) (*domain.MosqueSettings, error) {
	snap, err := d.settingsRef(ctx).Get(ctx)
	if err != nil {
		return nil, err
	}

	var settings domain.MosqueSettings
	if err := snap.DataTo(&settings); err != nil {
		return nil, err
	}

	return &settings, nil
}
