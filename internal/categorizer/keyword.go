package categorizer

import "hylin/einvoice-csv/internal/models"

// defaultGroups returns the built-in ordered keyword taxonomy. The slice is
// rebuilt per categorizer so instances cannot share mutable state.
//
// Order is significant and must not be rearranged: 咖啡凍 is a snack by
// ingredient but resolves to 飲料 because the beverage group is tested
// first, matching the categorization of existing exports.
func defaultGroups() []keywordGroup {
	return []keywordGroup{
		{
			category: models.CategoryBeverages,
			keywords: []string{
				"咖啡", "coffee", "latte", "拿鐵", "奶茶", "紅茶", "綠茶", "青茶",
				"烏龍", "果汁", "juice", "可樂", "cola", "汽水", "礦泉水", "豆漿",
				"優酪乳", "飲料", "茶",
			},
		},
		{
			category: models.CategorySnacks,
			keywords: []string{
				"餅乾", "cookie", "洋芋片", "薯片", "糖果", "candy", "巧克力",
				"chocolate", "蛋糕", "cake", "冰淇淋", "布丁", "零食", "snack",
			},
		},
		{
			category: models.CategoryMeals,
			keywords: []string{
				"便當", "壽司", "sushi", "漢堡", "burger", "披薩", "pizza", "火鍋",
				"套餐", "定食", "雞排", "滷味", "炒飯", "拉麵", "義大利麵", "早餐",
				"午餐", "晚餐", "麵包", "飯糰", "水餃",
			},
		},
		{
			category: models.CategoryFreshFood,
			keywords: []string{
				"蔬菜", "水果", "香蕉", "蘋果", "豬肉", "牛肉", "雞肉", "魚",
				"海鮮", "雞蛋", "牛奶", "milk", "生鮮", "青菜",
			},
		},
		{
			category: models.CategoryDaily,
			keywords: []string{
				"衛生紙", "紙巾", "洗髮", "shampoo", "沐浴", "牙膏", "牙刷",
				"洗衣", "清潔", "洗碗精", "垃圾袋", "毛巾", "日用",
			},
		},
		{
			category: models.CategoryHealth,
			keywords: []string{
				"藥", "維他命", "vitamin", "保健", "口罩", "mask", "酒精",
				"繃帶", "診所", "護理",
			},
		},
		{
			category: models.CategoryTransport,
			keywords: []string{
				"捷運", "mrt", "公車", "高鐵", "台鐵", "火車", "客運", "加油",
				"汽油", "95無鉛", "98無鉛", "停車", "uber", "taxi", "計程車",
				"悠遊卡", "一卡通", "車票",
			},
		},
		{
			category: models.CategoryClothing,
			keywords: []string{
				"上衣", "襯衫", "t恤", "褲", "裙", "鞋", "襪", "帽", "外套",
				"內衣", "服飾", "衣",
			},
		},
		{
			category: models.CategoryElectronics,
			keywords: []string{
				"手機", "iphone", "電腦", "筆電", "平板", "耳機", "充電",
				"行動電源", "電池", "usb", "螢幕", "滑鼠", "鍵盤", "3c",
			},
		},
		{
			category: models.CategoryStationery,
			keywords: []string{
				"原子筆", "鉛筆", "筆記本", "文具", "膠帶", "便利貼", "資料夾",
				"橡皮擦", "修正帶", "筆",
			},
		},
	}
}
