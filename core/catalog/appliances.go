// Package catalog - Appliance ratings
package catalog

var appliances = buildAppliances()

// Default returns the built-in appliance catalog
func Default() *Catalog {
	return appliances
}

func buildAppliances() *Catalog {
	c := newCatalog()

	c.register(ApplianceSpec{Name: "Bulb", RatedKw: 0.06, Description: "Standard bulb for lighting."})
	c.register(ApplianceSpec{Name: "Fan", RatedKw: 0.075, Description: "Ceiling fan for cooling."})
	c.register(ApplianceSpec{Name: "AC", RatedKw: 2.0, Description: "Air conditioner for cooling or heating."})
	c.register(ApplianceSpec{Name: "Oven", RatedKw: 1.5, Description: "Electric oven for cooking."})
	c.register(ApplianceSpec{Name: "Motor", RatedKw: 1.0, Description: "Electric motor (e.g., pump)."})
	c.register(ApplianceSpec{Name: "Iron", RatedKw: 1.0, Description: "Electric iron for clothes."})
	c.register(ApplianceSpec{Name: "Laptop Charger", RatedKw: 0.05, Description: "Laptop charging adapter."})
	c.register(ApplianceSpec{Name: "Juicer", RatedKw: 0.3, Description: "Electric juicer for fruit or vegetable extraction."})
	c.register(ApplianceSpec{Name: "Mobile Charger", RatedKw: 0.01, Description: "Mobile phone charger."})
	c.register(ApplianceSpec{Name: "LCD/TV", RatedKw: 0.1, Description: "LED/LCD TV or monitor."})
	c.register(ApplianceSpec{Name: "Electric Bike Charger", RatedKw: 0.8, Description: "Charger for electric two-wheelers."})
	c.register(ApplianceSpec{Name: "Fridge", RatedKw: 0.15, Description: "Refrigerator for food storage."})
	c.register(ApplianceSpec{Name: "Washing Machine", RatedKw: 1.0, Description: "Washing machine for laundry."})
	c.register(ApplianceSpec{Name: "Spinner", RatedKw: 0.5, Description: "Dryer spinner for clothes."})
	c.register(ApplianceSpec{Name: "Geyser", RatedKw: 3.0, Description: "Electric geyser for hot water."})

	return c
}
