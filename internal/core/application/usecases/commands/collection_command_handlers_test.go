package commands_test

import (
	"testing"
	"time"

	"booksamples/internal/core/application/usecases/commands"
	"booksamples/internal/core/domain/model/collection"
	"booksamples/internal/core/domain/model/distribution"
	"booksamples/internal/core/domain/model/kernel"
	"booksamples/internal/core/domain/model/stock"
	"booksamples/internal/core/domain/model/vehicle"
	"booksamples/internal/core/domain/services"
	"booksamples/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var collectionDate = time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC)

func submittedDistribution(t *testing.T, v *vehicle.Vehicle, n int64) *distribution.Distribution {
	t.Helper()
	d := draftDistribution(t, v, n)
	_, err := d.ValidateDraft(distribution.ValidationContext{VehicleWarehouse: vanStore, FieldWarehouse: fieldStore})
	require.NoError(t, err)
	require.NoError(t, d.Submit(kernel.NewUUID()))
	return d
}

func draftCollection(t *testing.T, d *distribution.Distribution, q collection.Quantities) *collection.Collection {
	t.Helper()
	c, err := collection.NewFromDistribution(kernel.NewUUID(), d, collectionDate)
	require.NoError(t, err)
	require.NoError(t, c.UpdateQuantities([]collection.QuantityUpdate{{ItemCode: "MATH-5", Quantities: q}}))
	return c
}

func TestMakeCollectionCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	v := van(t)
	d := submittedDistribution(t, v, 40)
	cmd, err := commands.NewMakeCollectionCommand(kernel.NewUUID(), d.ID(), collectionDate, "")
	require.NoError(t, err)

	r := newRepos()
	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.distributions.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		r.vehicles.On("Get", ctx, v.ID()).Return(v, nil).Once(),
		r.collections.On("Add", ctx, mock.MatchedBy(func(c *collection.Collection) bool {
			return c.ID().IsEqual(cmd.CollectionID()) && c.SourceWarehouse() == fieldStore &&
				c.TargetWarehouse() == vanStore && c.TotalCollected().Equal(qty(40))
		})).Return(nil).Once(),
		r.uow.On("Commit", ctx).Return(nil).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewMakeCollectionCommandHandler(factoryFor[commands.CollectionUoW](r.uow), fieldStore)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	r.assertExpectations(t)
}

func TestCreateCollectionCommandHandler_Handle_ExceedsPending(t *testing.T) {
	// Arrange
	ctx := t.Context()
	v := van(t)
	d := submittedDistribution(t, v, 10)
	distributionID := d.ID()
	cmd, err := commands.NewCreateCollectionCommand(kernel.NewUUID(), collection.Header{
		DistributionID: &distributionID,
		CollectionDate: collectionDate,
	}, []commands.CollectionLine{{
		ItemCode:   "MATH-5",
		Quantities: collection.Quantities{Collected: qty(8), Damaged: qty(3)},
	}})
	require.NoError(t, err)

	r := newRepos()
	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.distributions.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		r.vehicles.On("Get", ctx, v.ID()).Return(v, nil).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreateCollectionCommandHandler(factoryFor[commands.CollectionUoW](r.uow), fieldStore)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, collection.ErrExceedsPending)
	r.collections.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	r.assertExpectations(t)
}

func TestCreateCollectionCommandHandler_Handle_Standalone(t *testing.T) {
	// Arrange
	ctx := t.Context()
	schoolID := kernel.NewUUID()
	cmd, err := commands.NewCreateCollectionCommand(kernel.NewUUID(), collection.Header{
		SchoolID:        schoolID,
		CollectionDate:  collectionDate,
		TargetWarehouse: mainStore,
	}, []commands.CollectionLine{{
		ItemCode:       "SCI-5",
		Quantities:     collection.Quantities{Collected: qty(4), Lost: qty(1)},
		QtyDistributed: qty(5),
		QtyPending:     qty(5),
	}})
	require.NoError(t, err)

	r := newRepos()
	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.collections.On("Add", ctx, mock.MatchedBy(func(c *collection.Collection) bool {
			return c.SchoolID().IsEqual(schoolID) && c.SourceWarehouse() == fieldStore &&
				c.TargetWarehouse() == mainStore && c.DistributionID() == nil
		})).Return(nil).Once(),
		r.uow.On("Commit", ctx).Return(nil).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreateCollectionCommandHandler(factoryFor[commands.CollectionUoW](r.uow), fieldStore)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	r.assertExpectations(t)
}

func TestSubmitCollectionCommandHandler_Handle_ReturnsAndWritesOff(t *testing.T) {
	// Arrange
	ctx := t.Context()
	v := van(t)
	d := submittedDistribution(t, v, 50)
	c := draftCollection(t, d, collection.Quantities{Collected: qty(30), Damaged: qty(10), Lost: qty(5)})
	cmd, err := commands.NewSubmitCollectionCommand(c.ID())
	require.NoError(t, err)

	r := newRepos()
	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.collections.On("Get", ctx, c.ID()).Return(c, nil).Once(),
		r.distributions.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		r.vehicles.On("Get", ctx, v.ID()).Return(v, nil).Once(),
		r.stock.On("GetBalances", ctx, []stock.BinKey{
			{ItemCode: "MATH-5", Warehouse: fieldStore},
			{ItemCode: "MATH-5", Warehouse: vanStore},
		}).Return(stock.Balances{{ItemCode: "MATH-5", Warehouse: fieldStore}: qty(50)}, nil).Once(),
		r.stock.On("AddEntry", ctx, mock.MatchedBy(func(e *stock.Entry) bool {
			return e.Type() == stock.MaterialTransfer && e.Reference().VoucherType == stock.VoucherCollection
		})).Return(nil).Once(),
		r.stock.On("SaveBins", ctx, bins(
			stock.Bin{ItemCode: "MATH-5", Warehouse: fieldStore, ActualQty: qty(20)},
			stock.Bin{ItemCode: "MATH-5", Warehouse: vanStore, ActualQty: qty(30)},
		)).Return(nil).Once(),
		r.stock.On("GetBalances", ctx, []stock.BinKey{{ItemCode: "MATH-5", Warehouse: fieldStore}}).
			Return(stock.Balances{{ItemCode: "MATH-5", Warehouse: fieldStore}: qty(20)}, nil).Once(),
		r.stock.On("AddEntry", ctx, mock.MatchedBy(func(e *stock.Entry) bool {
			return e.Type() == stock.MaterialIssue
		})).Return(nil).Once(),
		r.stock.On("SaveBins", ctx, bins(
			stock.Bin{ItemCode: "MATH-5", Warehouse: fieldStore, ActualQty: qty(5)},
		)).Return(nil).Once(),
		r.distributions.On("Update", ctx, d).Return(nil).Once(),
		r.collections.On("Update", ctx, c).Return(nil).Once(),
		r.uow.On("Commit", ctx).Return(nil).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewSubmitCollectionCommandHandler(factoryFor[commands.CollectionUoW](r.uow),
		services.NewStockPoster(false), fieldStore)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, collection.Collected, c.Status())
	assert.NotNil(t, c.ReturnEntryID())
	assert.NotNil(t, c.WriteOffEntryID())
	assert.Equal(t, distribution.PartiallyCollected, d.Status())
	assert.True(t, d.TotalCollected().Equal(qty(45)))
	assert.True(t, d.TotalPending().Equal(qty(5)))
	r.assertExpectations(t)
}

func TestSubmitCollectionCommandHandler_Handle_WriteOffOnly(t *testing.T) {
	// Arrange
	ctx := t.Context()
	v := van(t)
	d := submittedDistribution(t, v, 5)
	c := draftCollection(t, d, collection.Quantities{Lost: qty(5)})
	cmd, err := commands.NewSubmitCollectionCommand(c.ID())
	require.NoError(t, err)

	r := newRepos()
	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.collections.On("Get", ctx, c.ID()).Return(c, nil).Once(),
		r.distributions.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		r.vehicles.On("Get", ctx, v.ID()).Return(v, nil).Once(),
		r.stock.On("GetBalances", ctx, []stock.BinKey{{ItemCode: "MATH-5", Warehouse: fieldStore}}).
			Return(stock.Balances{{ItemCode: "MATH-5", Warehouse: fieldStore}: qty(5)}, nil).Once(),
		r.stock.On("AddEntry", ctx, mock.AnythingOfType("*stock.Entry")).Return(nil).Once(),
		r.stock.On("SaveBins", ctx, mock.Anything).Return(nil).Once(),
		r.distributions.On("Update", ctx, d).Return(nil).Once(),
		r.collections.On("Update", ctx, c).Return(nil).Once(),
		r.uow.On("Commit", ctx).Return(nil).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewSubmitCollectionCommandHandler(factoryFor[commands.CollectionUoW](r.uow),
		services.NewStockPoster(false), fieldStore)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Nil(t, c.ReturnEntryID())
	assert.NotNil(t, c.WriteOffEntryID())
	assert.Equal(t, distribution.FullyCollected, d.Status())
	r.assertExpectations(t)
}

func TestSubmitCollectionCommandHandler_Handle_ConcurrentDistributionChange(t *testing.T) {
	// Arrange
	ctx := t.Context()
	v := van(t)
	d := submittedDistribution(t, v, 5)
	c := draftCollection(t, d, collection.Quantities{Lost: qty(5)})
	cmd, err := commands.NewSubmitCollectionCommand(c.ID())
	require.NoError(t, err)

	r := newRepos()
	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.collections.On("Get", ctx, c.ID()).Return(c, nil).Once(),
		r.distributions.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		r.vehicles.On("Get", ctx, v.ID()).Return(v, nil).Once(),
		r.stock.On("GetBalances", ctx, mock.Anything).
			Return(stock.Balances{{ItemCode: "MATH-5", Warehouse: fieldStore}: qty(5)}, nil).Once(),
		r.stock.On("AddEntry", ctx, mock.Anything).Return(nil).Once(),
		r.stock.On("SaveBins", ctx, mock.Anything).Return(nil).Once(),
		r.distributions.On("Update", ctx, d).Return(errs.NewVersionIsInvalidError("distribution")).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewSubmitCollectionCommandHandler(factoryFor[commands.CollectionUoW](r.uow),
		services.NewStockPoster(false), fieldStore)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	r.collections.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	r.uow.AssertNotCalled(t, "Commit", mock.Anything)
	r.assertExpectations(t)
}

func TestCancelCollectionCommandHandler_Handle_RestoresDistribution(t *testing.T) {
	// Arrange
	ctx := t.Context()
	v := van(t)
	d := submittedDistribution(t, v, 5)
	c := draftCollection(t, d, collection.Quantities{Lost: qty(5)})
	require.NoError(t, c.ValidateDraft(collection.ValidationContext{Distribution: d, FieldWarehouse: fieldStore}))

	poster := services.NewStockPoster(false)
	writeOff, err := stock.NewEntry(kernel.NewUUID(), stock.MaterialIssue, collectionDate,
		stock.Reference{VoucherType: stock.VoucherCollection, VoucherID: c.ID()}, c.WriteOffLines())
	require.NoError(t, err)
	_, err = poster.Post(writeOff, stock.Balances{{ItemCode: "MATH-5", Warehouse: fieldStore}: qty(5)})
	require.NoError(t, err)
	writeOffID := writeOff.ID()
	require.NoError(t, c.Submit(nil, &writeOffID))
	require.NoError(t, d.UpdateCollection(c.DistributionDeltas()))
	require.Equal(t, distribution.FullyCollected, d.Status())

	cmd, err := commands.NewCancelCollectionCommand(c.ID())
	require.NoError(t, err)

	r := newRepos()
	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.collections.On("Get", ctx, c.ID()).Return(c, nil).Once(),
		r.stock.On("GetEntry", ctx, writeOffID).Return(writeOff, nil).Once(),
		r.stock.On("GetBalances", ctx, []stock.BinKey{{ItemCode: "MATH-5", Warehouse: fieldStore}}).
			Return(stock.Balances{}, nil).Once(),
		r.stock.On("UpdateEntry", ctx, writeOff).Return(nil).Once(),
		r.stock.On("SaveBins", ctx, bins(
			stock.Bin{ItemCode: "MATH-5", Warehouse: fieldStore, ActualQty: qty(5)},
		)).Return(nil).Once(),
		r.distributions.On("Get", ctx, d.ID()).Return(d, nil).Once(),
		r.distributions.On("Update", ctx, d).Return(nil).Once(),
		r.collections.On("Update", ctx, c).Return(nil).Once(),
		r.uow.On("Commit", ctx).Return(nil).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCancelCollectionCommandHandler(factoryFor[commands.CollectionUoW](r.uow), poster)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, collection.Cancelled, c.Status())
	assert.True(t, d.TotalCollected().IsZero())
	assert.Equal(t, distribution.Distributed, d.Status())
	r.assertExpectations(t)
}

func TestNewCreateCollectionCommand_RequiresSchoolOrDistribution(t *testing.T) {
	_, err := commands.NewCreateCollectionCommand(kernel.NewUUID(), collection.Header{},
		[]commands.CollectionLine{{ItemCode: "MATH-5"}})

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
