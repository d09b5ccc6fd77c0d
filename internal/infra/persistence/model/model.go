package model

// All lists every table model in dependency order, for AutoMigrate.
func All() []any {
	return []any{
		&UserModel{},
		&RefreshTokenModel{},
		&AddressModel{},
		&CategoryModel{},
		&ProductModel{},
		&CartModel{},
		&CartItemModel{},
		&OrderModel{},
		&OrderItemModel{},
	}
}
