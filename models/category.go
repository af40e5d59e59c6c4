package models

// Category 消费类别，固定闭集
// 校验白名单和月度报表的形状都来自 Categories()，保证两者不会各自维护一份列表
type Category string

const (
	CategoryFood      Category = "food"
	CategoryHealth    Category = "health"
	CategoryHousing   Category = "housing"
	CategorySport     Category = "sport"
	CategoryEducation Category = "education"
)

// Categories 获取所有消费类别（报表固定顺序）
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryHealth,
		CategoryHousing,
		CategorySport,
		CategoryEducation,
	}
}

// CategoryNames 获取所有类别名称（报表固定顺序）
func CategoryNames() []string {
	cats := Categories()
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = string(c)
	}
	return names
}

// Valid 判断是否为合法类别
func (c Category) Valid() bool {
	for _, v := range Categories() {
		if c == v {
			return true
		}
	}
	return false
}
