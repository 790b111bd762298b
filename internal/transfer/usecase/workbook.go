package usecase

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tealeg/xlsx"
	"go.uber.org/zap"
)

// Sheet names, in the order they appear in the workbook.
const (
	SheetProducts   = "Products"
	SheetCategories = "Categories"
	SheetOrders     = "Orders"
	SheetOrderItems = "OrderItems"
	SheetTables     = "Tables"
	SheetUsers      = "Users"
)

// ExportWorkbook writes the current data as an .xlsx file, one sheet per
// table with a header row. User PINs are left out.
func (uc *transferUseCase) ExportWorkbook(ctx context.Context, w io.Writer) error {
	snap, err := uc.Export(ctx)
	if err != nil {
		return err
	}

	file := xlsx.NewFile()

	sheet, err := addSheet(file, SheetProducts, "ID", "Name", "Price", "Category", "Brand", "Stock")
	if err != nil {
		return err
	}
	for _, p := range snap.Products {
		row := sheet.AddRow()
		row.AddCell().SetInt64(p.ID)
		row.AddCell().SetValue(p.Name)
		row.AddCell().SetFloat(p.Price.InexactFloat64())
		row.AddCell().SetValue(p.Category)
		row.AddCell().SetValue(deref(p.Brand))
		if p.Stock != nil {
			row.AddCell().SetInt64(*p.Stock)
		} else {
			row.AddCell()
		}
	}

	sheet, err = addSheet(file, SheetCategories, "ID", "Name", "Description", "Icon")
	if err != nil {
		return err
	}
	for _, c := range snap.Categories {
		row := sheet.AddRow()
		row.AddCell().SetInt64(c.ID)
		row.AddCell().SetValue(c.Name)
		row.AddCell().SetValue(deref(c.Description))
		row.AddCell().SetValue(deref(c.Icon))
	}

	orders, err := addSheet(file, SheetOrders,
		"ID", "Date", "Total", "Change", "TotalPaid", "ItemCount", "TableNumber", "PaymentMethod", "Status")
	if err != nil {
		return err
	}
	items, err := addSheet(file, SheetOrderItems, "OrderID", "ProductID", "Name", "Price", "Quantity", "Category")
	if err != nil {
		return err
	}
	for _, o := range snap.Orders {
		row := orders.AddRow()
		row.AddCell().SetInt64(o.ID)
		row.AddCell().SetValue(o.Date)
		row.AddCell().SetFloat(o.Total.InexactFloat64())
		row.AddCell().SetFloat(o.Change.InexactFloat64())
		row.AddCell().SetFloat(o.TotalPaid.InexactFloat64())
		row.AddCell().SetInt64(o.ItemCount)
		row.AddCell().SetInt64(o.TableNumber)
		row.AddCell().SetValue(o.PaymentMethod)
		row.AddCell().SetValue(o.Status)

		for _, it := range o.Items {
			row := items.AddRow()
			row.AddCell().SetInt64(o.ID)
			row.AddCell().SetInt64(it.ProductID)
			row.AddCell().SetValue(it.Name)
			row.AddCell().SetFloat(it.Price.InexactFloat64())
			row.AddCell().SetInt64(it.Quantity)
			row.AddCell().SetValue(deref(it.Category))
		}
	}

	sheet, err = addSheet(file, SheetTables, "ID", "Name", "Available", "CurrentOrderID")
	if err != nil {
		return err
	}
	for _, t := range snap.Tables {
		row := sheet.AddRow()
		row.AddCell().SetInt64(t.ID)
		row.AddCell().SetValue(t.Name)
		row.AddCell().SetBool(t.Available)
		if t.CurrentOrderID != nil {
			row.AddCell().SetInt64(*t.CurrentOrderID)
		} else {
			row.AddCell()
		}
	}

	sheet, err = addSheet(file, SheetUsers, "ID", "Name", "PinnedProductIDs")
	if err != nil {
		return err
	}
	for _, u := range snap.Users {
		row := sheet.AddRow()
		row.AddCell().SetInt64(u.ID)
		row.AddCell().SetValue(u.Name)
		row.AddCell().SetValue(joinIDs(u.PinnedProductIDs))
	}

	if err := file.Write(w); err != nil {
		uc.logger.Error("failed to write workbook", zap.Error(err))
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func addSheet(file *xlsx.File, name string, headers ...string) (*xlsx.Sheet, error) {
	sheet, err := file.AddSheet(name)
	if err != nil {
		return nil, fmt.Errorf("failed to add %s sheet: %w", name, err)
	}
	header := sheet.AddRow()
	for _, h := range headers {
		header.AddCell().SetValue(h)
	}
	return sheet, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}
