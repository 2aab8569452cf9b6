package xlsxexport

import (
	"booksamples/internal/core/domain/model/ledger"
)

func BookLedger(rows []ledger.BookRow) Sheet {
	sheet := Sheet{
		Name: "Book Sample Ledger",
		Columns: []Column{
			{"Date", 12}, {"Voucher Type", 26}, {"Voucher No", 38}, {"Item Code", 14}, {"Item Name", 28},
			{"Class/Grade", 12}, {"School", 26}, {"Vehicle", 12}, {"Person", 18}, {"Warehouse", 22},
			{"Qty In", 10}, {"Qty Out", 10}, {"Balance", 10},
		},
	}
	for _, r := range rows {
		sheet.Rows = append(sheet.Rows, []any{
			r.Date, r.VoucherType, r.VoucherNo, r.ItemCode, r.ItemName,
			r.ClassGrade, r.School, r.Vehicle, r.Person, r.Warehouse,
			r.QtyIn, r.QtyOut, r.Balance,
		})
	}
	return sheet
}

func SchoolLedger(rows []ledger.SchoolRow) Sheet {
	sheet := Sheet{
		Name: "School Sample Ledger",
		Columns: []Column{
			{"School", 26}, {"Area/Zone", 14}, {"Date", 12}, {"Voucher Type", 26}, {"Voucher No", 38},
			{"Item Code", 14}, {"Item Name", 28}, {"Class/Grade", 12}, {"Person", 18},
			{"Given", 10}, {"Returned", 10}, {"Balance", 10},
		},
	}
	for _, r := range rows {
		sheet.Rows = append(sheet.Rows, []any{
			r.School, r.AreaZone, r.Date, r.VoucherType, r.VoucherNo,
			r.ItemCode, r.ItemName, r.ClassGrade, r.Person,
			r.Given, r.Returned, r.Balance,
		})
	}
	return sheet
}

func VehicleLedger(rows []ledger.VehicleRow) Sheet {
	sheet := Sheet{
		Name: "Vehicle Sample Ledger",
		Columns: []Column{
			{"Vehicle", 12}, {"Date", 12}, {"Voucher Type", 26}, {"Voucher No", 38}, {"Item Code", 14},
			{"Item Name", 28}, {"School", 26}, {"Person", 18},
			{"Loaded", 10}, {"Distributed", 12}, {"Collected", 10}, {"Balance", 10},
		},
	}
	for _, r := range rows {
		sheet.Rows = append(sheet.Rows, []any{
			r.Vehicle, r.Date, r.VoucherType, r.VoucherNo, r.ItemCode,
			r.ItemName, r.School, r.Person,
			r.Loaded, r.Distributed, r.Collected, r.Balance,
		})
	}
	return sheet
}

func PendingCollection(items []ledger.PendingItem) Sheet {
	sheet := Sheet{
		Name: "Pending Sample Collection",
		Columns: []Column{
			{"School", 26}, {"Area/Zone", 14}, {"Distribution", 38}, {"Distribution Date", 16},
			{"Item Code", 14}, {"Item Name", 28}, {"Class/Grade", 12},
			{"Distributed", 12}, {"Collected", 10}, {"Pending", 10},
			{"Expected Return", 16}, {"Days Overdue", 12}, {"Distributor", 18},
		},
	}
	for _, item := range items {
		sheet.Rows = append(sheet.Rows, []any{
			item.School, item.AreaZone, item.DistributionID, item.DistributionDate,
			item.ItemCode, item.ItemName, item.ClassGrade,
			item.QtyDistributed, item.QtyCollected, item.QtyPending,
			item.ExpectedReturnDate, item.DaysOverdue, item.DistributorName,
		})
	}
	return sheet
}
