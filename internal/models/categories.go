package models

// Category names form the fixed classification taxonomy for invoice items.
// The categorizer tests keyword groups in this order and assigns the first
// match; names here match the categories used in existing exports.
const (
	CategoryBeverages   = "飲料"
	CategorySnacks      = "零食"
	CategoryMeals       = "餐飲"
	CategoryFreshFood   = "生鮮食品"
	CategoryDaily       = "日用品"
	CategoryHealth      = "醫療保健"
	CategoryTransport   = "交通"
	CategoryClothing    = "服飾"
	CategoryElectronics = "3C電子"
	CategoryStationery  = "文具"
	CategoryOther       = "其他"
)

// CategoryConfig is one ordered keyword group loaded from categories.yaml.
type CategoryConfig struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// CategoriesConfig is the top-level structure of categories.yaml.
type CategoriesConfig struct {
	Categories []CategoryConfig `yaml:"categories"`
}
