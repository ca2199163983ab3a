package catalog

import "github.com/ventiq/ventiq-terminal/pkg/models"

// BuiltinScreenshots returns a fresh copy of the built-in screenshot index.
// Entries are keyed by tutorial title, not key.
func BuiltinScreenshots() *models.ScreenshotIndex {
	return &models.ScreenshotIndex{
		Files: map[string][]string{
			// Admin web
			"Registrar una empresa": {
				"new_shop1.jpg",
				"new_shop2.jpg",
				"new_shop3.jpg",
				"bienvenida.jpg",
			},
			"Gestionar almacenes": {
				"menu_admin.jpg",
				"almacen_listado.jpg",
				"almacen_detalles.jpg",
				"almacen_new_zona.jpg",
			},
			"Agregar productos": {
				"menu_admin.jpg",
				"listado_productos.jpg",
				"new_producto.jpg",
				"new_producto_select_categoria.jpg",
				"new_producto_select_subcategoria.jpg",
				"new_producto_resumen.jpg",
				"listado_producto_after_insert.jpg",
			},
			"Recepcionar productos": {
				"menu_admin.jpg",
				"inventario_operaciones.jpg",
				"inventario_new_recepcion.jpg",
				"inventario_new_recepcion_select_zones.jpg",
				"inventario_new_recepcion_select_product_list.jpg",
				"inventario_new_reception_register_cantidad_y_precio_unitario.jpg",
				"inventario_new_recepction_resumen_productos.jpg",
				"invetario_listado_operaciones.jpg", // filename is misspelled on disk
				"inventario_confirm_operacion.jpg",
				"inventario_listado_product_after_recepcion.jpg",
			},
			"Dashboard de Ventas": {
				"ejecutive_dash_general.jpg",
				"dash_ventas.jpg",
				"dash_ventas_by_vendedor.jpg",
				"resumen_ventas.jpg",
			},
			"Transferencias entre Zonas": {
				"inventario_operaciones.jpg",
				"inventario_transferencia_entre_zonas.jpg",
				"inventario_transferencia_entre_zonas_select_zonas.jpg",
				"inventario_transferencia_select_cantidad.jpg",
				"invetario_transferencia_resumen.jpg",
			},
			"Configuración de Categorías y Subcategorías": {
				"menu_admin.jpg",
				"list_categorias_productos_by_tienda.jpg",
				"new_categoria.jpg",
				"subcategorias_by_tienda.jpg",
				"new_subcategorias_by_tienda.jpg",
			},

			// Seller app
			"Cómo realizar una venta": {
				"main_categorias_tienda.jpg",
				"productos_by_categoria.jpg",
				"detail_product.jpg",
				"pre_order.jpg",
				"confirm_order.jpg",
			},
			"Consultar inventario": {
				"menu.jpg",
				"productos_by_categoria.jpg",
				"detail_product.jpg",
			},
			"Configurar la aplicación": {
				"login.jpg",
				"menu.jpg",
				"apertura_turno_caja.jpg",
				"ventas_turno_dash.jpg",
				"crear_cierre_turno_caja.jpg",
			},
			"Gestión de Turnos": {
				"apertura_turno_caja.jpg",
				"ventas_turno_dash.jpg",
				"print_products_turno.jpg",
				"crear_cierre_turno_caja.jpg",
				"crear_cierre_turno_caja2.jpg",
			},
			"Manejo de Egresos": {
				"menu.jpg",
				"extraccion_parcial_egreso.jpg",
				"confirm_egreso.jpg",
			},
		},
		Seller: []string{
			"Cómo realizar una venta",
			"Consultar inventario",
			"Configurar la aplicación",
			"Gestión de Turnos",
			"Manejo de Egresos",
		},
	}
}
