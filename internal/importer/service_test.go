package importer_test

import (
	"context"
	"testing"

	"github.com/cokeke26/fenats/internal/importer"
	"github.com/cokeke26/fenats/internal/member"
	"github.com/cokeke26/fenats/internal/model"
	sharedContext "github.com/cokeke26/fenats/internal/shared/context"
	"github.com/cokeke26/fenats/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const nominaCSV = "RUT;DV;NOMBRE;GENERO\n" +
	"10017452;9;Ana Rojas;Femenino\n" +
	"9.313.137;1;Pedro Soto;Masculino\n" +
	"7654321;k;Carla Díaz;\n" +
	"11111111;1;;F\n" +
	"22222222;2;;M\n"

func setupImportService(t *testing.T) (*importer.ImportService, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	store := member.NewStore(db, member.NewMemberRepository())
	return importer.NewImportService(store, testutil.SequentialTokens()), db
}

func TestImport_EndToEndCreatesThenUpdates(t *testing.T) {
	// Given: header + 3 valid rows + 2 rows without a name
	service, db := setupImportService(t)
	actor := sharedContext.Actor{AdminID: 1, Email: "admin@fenats.cl"}
	upload := importer.Upload{Filename: "nomina.csv", Data: []byte(nominaCSV), Affiliate: "Sindicato Hospital", Source: "nomina marzo"}

	// When: first run against an empty store
	first, err := service.Import(context.Background(), actor, upload)

	// Then
	require.NoError(t, err)
	assert.Equal(t, importer.Result{TotalRows: 3, Created: 3}, first)

	var ana model.Member
	require.NoError(t, db.Where("rut = ?", "10017452-9").First(&ana).Error)
	assert.Equal(t, "10.017.452-9", ana.RutDisplay)
	assert.Equal(t, model.GenderFemale, ana.Gender)
	assert.Equal(t, "Sindicato Hospital / nomina marzo", ana.ImportSource)
	assert.Equal(t, model.MemberActive, ana.Status)

	var carla model.Member
	require.NoError(t, db.Where("rut = ?", "7654321-K").First(&carla).Error)
	assert.Equal(t, model.GenderUnset, carla.Gender)

	// When: the same file again
	second, err := service.Import(context.Background(), actor, upload)

	// Then: nothing new, every row updated, tokens untouched
	require.NoError(t, err)
	assert.Equal(t, importer.Result{TotalRows: 3, Updated: 3}, second)

	var count int64
	require.NoError(t, db.Model(&model.Member{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)

	var again model.Member
	require.NoError(t, db.Where("rut = ?", "10017452-9").First(&again).Error)
	assert.Equal(t, ana.Token, again.Token)
}

func TestImport_UsesFirstSheetWithTable(t *testing.T) {
	service, db := setupImportService(t)
	data := buildXLSX(t, map[string][][]any{
		"Portada": {{"Nómina de socios"}},
		"Datos": {
			{"Nómina 2024"},
			{"RUT CON DV", "Nombre Completo"},
			{"10.017.452-9", "Ana Rojas"},
		},
	}, "Portada", "Datos")

	result, err := service.Import(context.Background(), sharedContext.SystemActor, importer.Upload{Filename: "nomina.xlsx", Data: data})

	require.NoError(t, err)
	assert.Equal(t, importer.Result{TotalRows: 1, Created: 1}, result)

	var saved model.Member
	require.NoError(t, db.Where("rut = ?", "10017452-9").First(&saved).Error)
	assert.Nil(t, saved.CreatedBy)
}

func TestImport_NoTableIsEmptyResult(t *testing.T) {
	service, _ := setupImportService(t)

	result, err := service.Import(context.Background(), sharedContext.SystemActor, importer.Upload{
		Filename: "otra.csv",
		Data:     []byte("Cargo,Sueldo\nTesorero,100\n"),
	})

	require.NoError(t, err)
	assert.Equal(t, importer.Result{}, result)
}

func TestImport_InvalidFile(t *testing.T) {
	service, _ := setupImportService(t)

	_, err := service.Import(context.Background(), sharedContext.SystemActor, importer.Upload{Filename: "vacio.csv"})

	assert.ErrorIs(t, err, importer.ErrInvalidSpreadsheet)
}
